//go:build integration

package repository

import (
	"context"
	"sort"
	"testing"
	"time"

	"bookshelf-graphql/internal/domains/book/model"
	"bookshelf-graphql/internal/infrastructure/mongodb/mongotest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoRepository(mongotest.NewDatabase(t)).(*mongoRepository)
	clock := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	authorID := uuid.New()
	year := time.Date(1965, time.August, 1, 0, 0, 0, 0, time.UTC)
	dune, err := repo.Create(ctx, &model.Book{Title: "Dune", Pages: 412, AuthorID: authorID, YearOfPublication: &year})
	require.NoError(t, err)
	kindred, err := repo.Create(ctx, &model.Book{Title: "Kindred", Pages: 264, AuthorID: uuid.New()})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, dune.ID)
	require.NoError(t, err)
	require.NotNil(t, found.YearOfPublication)
	assert.True(t, year.Equal(*found.YearOfPublication))
	assert.Equal(t, authorID, found.AuthorID)

	noYear, err := repo.FindByID(ctx, kindred.ID)
	require.NoError(t, err)
	assert.Nil(t, noYear.YearOfPublication)

	byAuthor, err := repo.Find(ctx, model.BookFilter{AuthorID: &authorID})
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, dune.ID, byAuthor[0].ID)

	deleted := true
	updated, err := repo.Update(ctx, dune.ID, model.BookPatch{IsDeleted: &deleted})
	require.NoError(t, err)
	assert.True(t, updated.IsDeleted)
	assert.Equal(t, "Dune", updated.Title)

	active := false
	remaining, err := repo.Find(ctx, model.BookFilter{IsDeleted: &active})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kindred.ID, remaining[0].ID)

	restored := false
	updated, err = repo.Update(ctx, dune.ID, model.BookPatch{IsDeleted: &restored})
	require.NoError(t, err)
	assert.False(t, updated.IsDeleted)

	all, err := repo.Find(ctx, model.BookFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, dune.ID, all[0].ID)
	assert.Equal(t, kindred.ID, all[1].ID)
}

func TestMongoRepository_SameCreatedAtOrdersByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoRepository(mongotest.NewDatabase(t)).(*mongoRepository)
	fixed := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	var ids []string
	for i := 0; i < 5; i++ {
		b, err := repo.Create(ctx, &model.Book{Title: "Same instant", Pages: 1, AuthorID: uuid.New()})
		require.NoError(t, err)
		ids = append(ids, b.ID.String())
	}
	sort.Strings(ids)

	for run := 0; run < 3; run++ {
		books, err := repo.Find(ctx, model.BookFilter{})
		require.NoError(t, err)
		require.Len(t, books, len(ids))
		for i, b := range books {
			assert.Equal(t, ids[i], b.ID.String())
		}
	}
}

func TestMongoRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoRepository(mongotest.NewDatabase(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	title := "x"
	_, err = repo.Update(ctx, uuid.New(), model.BookPatch{Title: &title})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}
