package service

import (
	"context"

	"bookshelf-graphql/internal/domains/author/model"

	"github.com/google/uuid"
)

// ServiceInterface holds the Author business rules.
type ServiceInterface interface {
	// Create validates the input and persists an author with an empty books list.
	Create(ctx context.Context, in model.CreateAuthorInput) (*model.Author, error)

	// GetByID does not filter soft-deleted authors.
	// Errors: model.ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// ListActive returns authors whose isDeleted flag is false.
	ListActive(ctx context.Context) ([]*model.Author, error)

	// Update writes only the provided fields. No relation side effects.
	// Errors: model.ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, in model.UpdateAuthorInput) (*model.Author, error)

	// ToggleDeleted flips isDeleted; calling it twice restores the author.
	// Errors: NOT_FOUND "Error deleting author: Author not found"
	ToggleDeleted(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// LinkBook records bookID in the author's back-reference list
	// (appended when the list is empty, prepended otherwise).
	// Errors: model.ErrAuthorNotFound
	LinkBook(ctx context.Context, authorID, bookID uuid.UUID) (*model.Author, error)
}
