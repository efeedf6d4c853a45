package service

import (
	"context"
	"fmt"

	"bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/domains/user/repository"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type userService struct {
	repo repository.RepositoryInterface
}

func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) ListActive(ctx context.Context) ([]*model.User, error) {
	notDeleted := false
	users, err := s.repo.Find(ctx, model.UserFilter{IsDeleted: &notDeleted})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *userService) Register(ctx context.Context) (*model.User, error) {
	return nil, model.ErrRegisterNotEnabled
}

func (s *userService) Create(ctx context.Context, in model.CreateUserInput) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	created, err := s.repo.Create(ctx, in.ToEntity())
	if err != nil {
		return nil, apperror.Internal("failed to create user").WithCause(err)
	}
	log.Debug().Str("user_id", created.ID.String()).Msg("user created")
	return created, nil
}
