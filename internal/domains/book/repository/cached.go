package repository

import (
	"context"
	"time"

	"bookshelf-graphql/internal/domains/book/model"
	"bookshelf-graphql/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const bookCacheKeyPrefix = "book:"

// cachedRepository caches FindByID results and drops the entry on Update.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
	gens  *cache.Generations
}

func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{
		RepositoryInterface: inner,
		cache:               c,
		ttl:                 ttl,
		gens:                cache.NewGenerations(),
	}
}

// Uncached returns the repository behind the cache decorator, or repo itself.
// Read-modify-write callers use it so they never start from a cached copy.
func Uncached(repo RepositoryInterface) RepositoryInterface {
	if c, ok := repo.(*cachedRepository); ok {
		return c.RepositoryInterface
	}
	return repo
}

func bookCacheKey(id uuid.UUID) string {
	return bookCacheKeyPrefix + id.String()
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	key := bookCacheKey(id)

	var cached model.Book
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache read failed")
	}
	if found {
		return &cached, nil
	}

	gen := r.gens.Current(key)
	b, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_, err = r.gens.Fill(key, gen, func() error {
		return r.cache.Set(ctx, key, b, r.ttl)
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("book cache write failed")
	}
	return b, nil
}

func (r *cachedRepository) Update(ctx context.Context, id uuid.UUID, patch model.BookPatch) (*model.Book, error) {
	updated, err := r.RepositoryInterface.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	key := bookCacheKey(id)
	err = r.gens.Invalidate(key, func() error {
		return r.cache.Delete(ctx, key)
	})
	if err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("book cache invalidation failed")
	}
	return updated, nil
}
