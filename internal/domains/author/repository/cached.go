package repository

import (
	"context"
	"time"

	"bookshelf-graphql/internal/domains/author/model"
	"bookshelf-graphql/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const authorCacheKeyPrefix = "author:"

// cachedRepository caches FindByID results and drops the entry on Update.
// Cache errors are logged and never fail the call.
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

func authorCacheKey(id uuid.UUID) string {
	return authorCacheKeyPrefix + id.String()
}

func (r *cachedRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	key := authorCacheKey(id)

	var cached model.Author
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache read failed")
	}
	if found {
		return &cached, nil
	}

	gen := r.gens.Current(key)
	a, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	_, err = r.gens.Fill(key, gen, func() error {
		return r.cache.Set(ctx, key, a, r.ttl)
	})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("author cache write failed")
	}
	return a, nil
}

func (r *cachedRepository) Update(ctx context.Context, id uuid.UUID, patch model.AuthorPatch) (*model.Author, error) {
	updated, err := r.RepositoryInterface.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	key := authorCacheKey(id)
	err = r.gens.Invalidate(key, func() error {
		return r.cache.Delete(ctx, key)
	})
	if err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("author cache invalidation failed")
	}
	return updated, nil
}
