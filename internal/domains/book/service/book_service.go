package service

import (
	"context"
	"errors"
	"fmt"

	"bookshelf-graphql/internal/domains/book/model"
	"bookshelf-graphql/internal/domains/book/repository"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BookService implements ServiceInterface
type BookService struct {
	repo    repository.RepositoryInterface
	authors AuthorLinker
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorLinker) ServiceInterface {
	return &BookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *BookService) Create(ctx context.Context, in model.CreateBookInput) (*model.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	created, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		return nil, apperror.Internal("failed to create book").WithCause(err)
	}

	if err := s.authors.LinkBook(ctx, created.AuthorID, created.ID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			log.Warn().
				Str("book_id", created.ID.String()).
				Str("author_id", created.AuthorID.String()).
				Msg("book saved but author does not exist")
			return nil, model.ErrAuthorNotFound
		}
		return nil, apperror.Internal("failed to link book to author").WithCause(err)
	}

	log.Debug().
		Str("book_id", created.ID.String()).
		Str("author_id", created.AuthorID.String()).
		Msg("book created")
	return created, nil
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookService) ListActive(ctx context.Context) ([]*model.Book, error) {
	notDeleted := false
	books, err := s.repo.Find(ctx, model.BookFilter{IsDeleted: &notDeleted})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *BookService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Book, error) {
	books, err := s.repo.Find(ctx, model.BookFilter{AuthorID: &authorID})
	if err != nil {
		return nil, fmt.Errorf("list books of author %s: %w", authorID, err)
	}
	return books, nil
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, in model.UpdateBookInput) (*model.Book, error) {
	patch := in.ToPatch()
	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *BookService) ToggleDeleted(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	current, err := repository.Uncached(s.repo).FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Prefix(err, "Error deleting book")
	}

	flipped := !current.IsDeleted
	updated, err := s.repo.Update(ctx, id, model.BookPatch{IsDeleted: &flipped})
	if err != nil {
		return nil, apperror.Prefix(err, "Error deleting book")
	}

	log.Info().
		Str("book_id", id.String()).
		Bool("is_deleted", updated.IsDeleted).
		Msg("book delete flag toggled")
	return updated, nil
}
