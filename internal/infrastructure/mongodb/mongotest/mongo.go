//go:build integration

// Package mongotest starts a disposable MongoDB for integration tests.
package mongotest

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/infrastructure/mongodb"

	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewDatabase starts a MongoDB container, connects through mongodb.Client and
// returns the test database. Everything is torn down when the test ends.
func NewDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err, "start mongo container")
	t.Cleanup(func() {
		if err := mongoContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	client := mongodb.New(mongodb.Config{URI: uri, Database: "bookshelf"})
	require.NoError(t, client.Connect(ctx))
	t.Cleanup(func() {
		if err := client.Close(context.Background()); err != nil {
			t.Logf("failed to disconnect mongo: %v", err)
		}
	})
	require.NoError(t, client.HealthCheck(ctx))

	return client.Database
}
