package service

import (
	"context"
	"errors"
	"fmt"

	"bookshelf-graphql/internal/domains/author/model"
	"bookshelf-graphql/internal/domains/author/repository"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// authorService implements ServiceInterface
type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, in model.CreateAuthorInput) (*model.Author, error) {
	if err := in.Validate(); err != nil {
		return nil, model.ErrInvalidAuthor.WithCause(err)
	}

	created, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		return nil, apperror.Internal("failed to create author").WithCause(err)
	}

	log.Debug().Str("author_id", created.ID.String()).Msg("author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *authorService) ListActive(ctx context.Context) ([]*model.Author, error) {
	notDeleted := false
	authors, err := s.repo.Find(ctx, model.AuthorFilter{IsDeleted: &notDeleted})
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, in model.UpdateAuthorInput) (*model.Author, error) {
	patch := in.ToPatch()
	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *authorService) ToggleDeleted(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	current, err := repository.Uncached(s.repo).FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Prefix(err, "Error deleting author")
	}

	flipped := !current.IsDeleted
	updated, err := s.repo.Update(ctx, id, model.AuthorPatch{IsDeleted: &flipped})
	if err != nil {
		return nil, apperror.Prefix(err, "Error deleting author")
	}

	log.Info().
		Str("author_id", id.String()).
		Bool("is_deleted", updated.IsDeleted).
		Msg("author delete flag toggled")
	return updated, nil
}

func (s *authorService) LinkBook(ctx context.Context, authorID, bookID uuid.UUID) (*model.Author, error) {
	author, err := repository.Uncached(s.repo).FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load author %s: %w", authorID, err)
	}

	books := author.WithBookLinked(bookID)
	return s.repo.Update(ctx, authorID, model.AuthorPatch{Books: &books})
}
