package service

import (
	"context"

	"bookshelf-graphql/internal/domains/user/model"

	"github.com/google/uuid"
)

type ServiceInterface interface {
	// GetByID fails with NOT_FOUND "could not find user by the provided id".
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListActive(ctx context.Context) ([]*model.User, error)
	// Register always fails with UNIMPLEMENTED.
	Register(ctx context.Context) (*model.User, error)
	// Create is only reachable from the demo data seeder.
	Create(ctx context.Context, in model.CreateUserInput) (*model.User, error)
}
