package repository

import (
	"context"

	"bookshelf-graphql/internal/domains/book/model"

	"github.com/google/uuid"
)

// RepositoryInterface is the Book collection of the entity store.
type RepositoryInterface interface {
	// Create assigns the identifier and timestamps and persists b.
	// The author reference is not checked here.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// FindByID does not filter soft-deleted books.
	// Errors: model.ErrBookNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// Find returns matching books in creation order.
	Find(ctx context.Context, filter model.BookFilter) ([]*model.Book, error)

	// Update writes the non-nil patch fields and returns the stored record.
	// Errors: model.ErrBookNotFound
	Update(ctx context.Context, id uuid.UUID, patch model.BookPatch) (*model.Book, error)
}
