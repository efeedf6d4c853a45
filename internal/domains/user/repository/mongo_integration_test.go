//go:build integration

package repository_test

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/domains/user/repository"
	"bookshelf-graphql/internal/infrastructure/mongodb/mongotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMongoRepository(mongotest.NewDatabase(t))

	ada, err := repo.Create(ctx, &model.User{FirstName: "Ada", Email: "ada@example.com", Phone: "555-0100"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ada.ID)
	grace, err := repo.Create(ctx, &model.User{FirstName: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", found.Email)
	assert.Equal(t, "555-0100", found.Phone)
	assert.False(t, found.IsDeleted)

	active := false
	users, err := repo.Find(ctx, model.UserFilter{IsDeleted: &active})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []uuid.UUID{ada.ID, grace.ID}, []uuid.UUID{users[0].ID, users[1].ID})

	deleted := true
	none, err := repo.Find(ctx, model.UserFilter{IsDeleted: &deleted})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
