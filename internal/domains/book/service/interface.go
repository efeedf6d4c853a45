package service

import (
	"context"

	"bookshelf-graphql/internal/domains/book/model"

	"github.com/google/uuid"
)

// ServiceInterface holds the Book business rules.
type ServiceInterface interface {
	// Create persists the book and then links it into the author's books list.
	// The two steps are not atomic: when the author lookup fails the book stays stored.
	// Errors: VALIDATION_FAILURE, model.ErrAuthorNotFound
	Create(ctx context.Context, in model.CreateBookInput) (*model.Book, error)

	// GetByID does not filter soft-deleted books.
	// Errors: model.ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// ListActive returns books whose isDeleted flag is false.
	ListActive(ctx context.Context) ([]*model.Book, error)

	// ListByAuthor returns every book referencing authorID, soft-deleted ones included.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error)

	// Update writes only the provided fields. A changed author is neither
	// validated nor reflected in any author's books list.
	// Errors: model.ErrBookNotFound
	Update(ctx context.Context, id uuid.UUID, in model.UpdateBookInput) (*model.Book, error)

	// ToggleDeleted flips isDeleted; calling it twice restores the book.
	// Errors: NOT_FOUND "Error deleting book: Book not found"
	ToggleDeleted(ctx context.Context, id uuid.UUID) (*model.Book, error)
}

// AuthorLinker records a new book in its author's back-reference list.
// It is satisfied by the author service.
type AuthorLinker interface {
	LinkBook(ctx context.Context, authorID, bookID uuid.UUID) error
}

// AuthorLinkerFunc adapts a function to AuthorLinker.
type AuthorLinkerFunc func(ctx context.Context, authorID, bookID uuid.UUID) error

func (f AuthorLinkerFunc) LinkBook(ctx context.Context, authorID, bookID uuid.UUID) error {
	return f(ctx, authorID, bookID)
}
