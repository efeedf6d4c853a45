package repository

import (
	"context"

	"bookshelf-graphql/internal/domains/author/model"

	"github.com/google/uuid"
)

// RepositoryInterface is the Author collection of the entity store.
type RepositoryInterface interface {
	// Create assigns the identifier and timestamps and persists a.
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// FindByID does not filter soft-deleted authors.
	// Errors: model.ErrAuthorNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// Find returns matching authors in creation order.
	Find(ctx context.Context, filter model.AuthorFilter) ([]*model.Author, error)

	// Update writes the non-nil patch fields and returns the stored record.
	// Errors: model.ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, patch model.AuthorPatch) (*model.Author, error)
}
