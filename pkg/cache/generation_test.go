package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerations_FillSkippedAfterInvalidate(t *testing.T) {
	g := NewGenerations()
	gen := g.Current("author:1")

	require.NoError(t, g.Invalidate("author:1", func() error { return nil }))

	ran, err := g.Fill("author:1", gen, func() error {
		t.Fatal("fill must not run after an invalidation")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, ran)

	ran, err = g.Fill("author:1", g.Current("author:1"), func() error { return nil })
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestGenerations_KeysAreIndependent(t *testing.T) {
	g := NewGenerations()
	gen := g.Current("book:1")
	require.NoError(t, g.Invalidate("book:2", func() error { return nil }))

	ran, err := g.Fill("book:1", gen, func() error { return errors.New("redis down") })
	assert.True(t, ran)
	assert.EqualError(t, err, "redis down")
}
