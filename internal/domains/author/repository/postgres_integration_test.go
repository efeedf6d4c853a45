//go:build integration

package repository_test

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/domains/author/model"
	"bookshelf-graphql/internal/domains/author/repository"
	"bookshelf-graphql/internal/domains/author/service"
	"bookshelf-graphql/internal/infrastructure/database/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_BackReferencesKeepOrder(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthorService(repository.NewPostgresRepository(dbtest.NewPool(t)))

	jane, err := svc.Create(ctx, model.CreateAuthorInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Age: 40})
	require.NoError(t, err)
	assert.Empty(t, jane.Books)

	first, second := uuid.New(), uuid.New()
	_, err = svc.LinkBook(ctx, jane.ID, first)
	require.NoError(t, err)
	linked, err := svc.LinkBook(ctx, jane.ID, second)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second, first}, linked.Books)

	stored, err := svc.GetByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{second, first}, stored.Books)

	age := 41
	updated, err := svc.Update(ctx, jane.ID, model.UpdateAuthorInput{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 41, updated.Age)
	assert.Equal(t, []uuid.UUID{second, first}, updated.Books, "unrelated updates keep the back-references")

	toggled, err := svc.ToggleDeleted(ctx, jane.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsDeleted)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestPostgresRepository_UnknownAuthor(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPostgresRepository(dbtest.NewPool(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
