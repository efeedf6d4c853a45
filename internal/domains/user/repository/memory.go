package repository

import (
	"context"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/infrastructure/memstore"

	"github.com/google/uuid"
)

type memoryRepository struct {
	users *memstore.Collection[model.User]
	now   func() time.Time
}

func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		users: memstore.New[model.User](nil),
		now:   time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	created := *u
	created.ID = uuid.New()
	now := r.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := r.users.Insert(created.ID, created); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (r *memoryRepository) Find(ctx context.Context, filter model.UserFilter) ([]*model.User, error) {
	matched := r.users.Filter(filter.Match)
	out := make([]*model.User, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}
