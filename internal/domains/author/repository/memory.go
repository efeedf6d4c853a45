package repository

import (
	"context"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/author/model"
	"bookshelf-graphql/internal/infrastructure/memstore"

	"github.com/google/uuid"
)

type memoryRepository struct {
	authors *memstore.Collection[model.Author]
	now     func() time.Time
}

// NewMemoryRepository creates an Author repository backed by process memory.
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		authors: memstore.New(model.Author.Clone),
		now:     time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := a.Clone()
	created.ID = uuid.New()
	if created.Books == nil {
		created.Books = []uuid.UUID{}
	}
	now := r.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := r.authors.Insert(created.ID, created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, ok := r.authors.Get(id)
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *memoryRepository) Find(ctx context.Context, filter model.AuthorFilter) ([]*model.Author, error) {
	matched := r.authors.Filter(filter.Match)
	out := make([]*model.Author, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, id uuid.UUID, patch model.AuthorPatch) (*model.Author, error) {
	updated, ok := r.authors.Update(id, func(a model.Author) model.Author {
		a = patch.Apply(a)
		a.UpdatedAt = r.now().UTC()
		return a
	})
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &updated, nil
}
