package container

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/config"
	"bookshelf-graphql/internal/graphql/executor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(seed bool) *config.Config {
	return &config.Config{
		App:   config.AppConfig{Environment: "test"},
		Store: config.StoreConfig{Driver: config.StoreMemory, SeedDemoData: seed},
		GraphQL: config.GraphQLConfig{
			Path:           "/graphql",
			MaxConcurrency: 4,
			MaxBodyBytes:   1 << 20,
		},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, memoryConfig(false))
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Mongo)
	assert.Nil(t, c.Cache)
	require.NotNil(t, c.Executor)
	require.NotNil(t, c.GraphQLHandler)

	resp := c.Executor.Execute(ctx, executor.Params{Query: `{ getAuthors { id } }`})
	require.Empty(t, resp.Errors)
	authors, ok := resp.Data.Get("getAuthors")
	require.True(t, ok)
	assert.Empty(t, authors)
}

func TestNew_SeedsDemoData(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, memoryConfig(true))
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	resp := c.Executor.Execute(ctx, executor.Params{Query: `{ getBooks { title author { lastName } } }`})
	require.Empty(t, resp.Errors)
	books, ok := resp.Data.Get("getBooks")
	require.True(t, ok)
	assert.Len(t, books, 6)
}

func TestHealthCheck_MemoryStore(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, memoryConfig(false))
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	status, err := c.HealthCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, "memory", status["store"])
	assert.Equal(t, "healthy", status["database"])
	assert.Equal(t, "disabled", status["cache"])
}
