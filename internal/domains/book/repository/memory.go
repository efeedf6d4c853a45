package repository

import (
	"context"
	"fmt"
	"time"

	"bookshelf-graphql/internal/domains/book/model"
	"bookshelf-graphql/internal/infrastructure/memstore"

	"github.com/google/uuid"
)

type memoryRepository struct {
	books *memstore.Collection[model.Book]
	now   func() time.Time
}

// NewMemoryRepository creates a Book repository backed by process memory.
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		books: memstore.New(model.Book.Clone),
		now:   time.Now,
	}
}

func (r *memoryRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := b.Clone()
	created.ID = uuid.New()
	now := r.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := r.books.Insert(created.ID, created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &created, nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, ok := r.books.Get(id)
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (r *memoryRepository) Find(ctx context.Context, filter model.BookFilter) ([]*model.Book, error) {
	matched := r.books.Filter(filter.Match)
	out := make([]*model.Book, len(matched))
	for i := range matched {
		out[i] = &matched[i]
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, id uuid.UUID, patch model.BookPatch) (*model.Book, error) {
	updated, ok := r.books.Update(id, func(b model.Book) model.Book {
		b = patch.Apply(b)
		b.UpdatedAt = r.now().UTC()
		return b
	})
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &updated, nil
}
