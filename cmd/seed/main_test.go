package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommand_MemoryStore(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_ENABLED", "false")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() { force, storeDriver = false, "" })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "seeded 3 authors, 6 books, 2 users into memory")
	assert.Contains(t, errOut.String(), "memory store selected")
}

func TestSeedCommand_RejectsUnknownStore(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--store", "sqlite"})
	t.Cleanup(func() { force, storeDriver = false, "" })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}
