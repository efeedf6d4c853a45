//go:build integration

package database_test

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/infrastructure/database"
	"bookshelf-graphql/internal/infrastructure/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.NewPool(t)

	require.NoError(t, database.EnsureSchema(ctx, pool))

	var tables int
	err := pool.QueryRow(ctx, `
        SELECT COUNT(*) FROM information_schema.tables
        WHERE table_schema = 'public' AND table_name IN ('authors', 'books', 'users')`).Scan(&tables)
	require.NoError(t, err)
	assert.Equal(t, 3, tables)
}
