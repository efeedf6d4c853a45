package repository

import (
	"context"

	"bookshelf-graphql/internal/domains/user/model"

	"github.com/google/uuid"
)

// RepositoryInterface is the User collection of the entity store.
type RepositoryInterface interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID does not filter soft-deleted users.
	// Errors: model.ErrUserNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Find returns matching users in creation order.
	Find(ctx context.Context, filter model.UserFilter) ([]*model.User, error)
}
