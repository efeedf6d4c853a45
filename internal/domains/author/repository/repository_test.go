package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"bookshelf-graphql/internal/domains/author/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache stores JSON in a map, like the redis implementation does.
type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	gets    int
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failGet {
		return false, errors.New("cache down")
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

func newAuthor(first string) *model.Author {
	return &model.Author{FirstName: first, LastName: "Doe", Email: first + "@x.com", Age: 40}
}

func TestMemoryRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	jane, err := repo.Create(ctx, newAuthor("jane"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, jane.ID)
	assert.Empty(t, jane.Books)
	assert.NotNil(t, jane.Books)
	assert.False(t, jane.IsDeleted)
	assert.False(t, jane.CreatedAt.IsZero())

	john, err := repo.Create(ctx, newAuthor("john"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", got.FirstName)

	deleted := true
	_, err = repo.Update(ctx, john.ID, model.AuthorPatch{IsDeleted: &deleted})
	require.NoError(t, err)

	notDeleted := false
	active, err := repo.Find(ctx, model.AuthorFilter{IsDeleted: &notDeleted})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, jane.ID, active[0].ID)

	all, err := repo.Find(ctx, model.AuthorFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, jane.ID, all[0].ID)
	assert.Equal(t, john.ID, all[1].ID)

	// Lookup by id ignores the soft-delete flag.
	found, err := repo.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted)
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	name := "x"
	_, err = repo.Update(ctx, uuid.New(), model.AuthorPatch{FirstName: &name})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestCachedRepositoryReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryRepository()
	c := newFakeCache()
	repo := NewCachedRepository(inner, c, time.Minute)

	created, err := repo.Create(ctx, newAuthor("jane"))
	require.NoError(t, err)

	first, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, c.data, authorCacheKey(created.ID))

	// Change the record behind the cache's back: the cached copy is served.
	name := "changed"
	_, err = inner.Update(ctx, created.ID, model.AuthorPatch{FirstName: &name})
	require.NoError(t, err)

	second, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.FirstName, second.FirstName)

	// Updates through the decorator invalidate the entry.
	name = "fresh"
	_, err = repo.Update(ctx, created.ID, model.AuthorPatch{FirstName: &name})
	require.NoError(t, err)
	assert.NotContains(t, c.data, authorCacheKey(created.ID))

	third, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh", third.FirstName)
}

// slowReadRepository holds FindByID after the inner read until released.
type slowReadRepository struct {
	RepositoryInterface
	read    chan struct{}
	release chan struct{}
}

func (r *slowReadRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := r.RepositoryInterface.FindByID(ctx, id)
	r.read <- struct{}{}
	<-r.release
	return a, err
}

func TestCachedRepositoryDropsFillRacingUpdate(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryRepository()
	created, err := mem.Create(ctx, newAuthor("jane"))
	require.NoError(t, err)

	slow := &slowReadRepository{RepositoryInterface: mem, read: make(chan struct{}, 1), release: make(chan struct{})}
	c := newFakeCache()
	repo := NewCachedRepository(slow, c, time.Minute)

	type result struct {
		author *model.Author
		err    error
	}
	done := make(chan result, 1)
	go func() {
		a, err := repo.FindByID(ctx, created.ID)
		done <- result{a, err}
	}()

	// The reader has loaded isDeleted=false and not yet filled the cache.
	<-slow.read
	deleted := true
	_, err = repo.Update(ctx, created.ID, model.AuthorPatch{IsDeleted: &deleted})
	require.NoError(t, err)
	close(slow.release)

	res := <-done
	require.NoError(t, res.err)
	assert.False(t, res.author.IsDeleted)
	assert.NotContains(t, c.data, authorCacheKey(created.ID))

	// The next read goes to the source and caches the current record.
	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Contains(t, c.data, authorCacheKey(created.ID))
}

func TestUncachedBypassesDecorator(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryRepository()
	c := newFakeCache()
	repo := NewCachedRepository(mem, c, time.Minute)

	assert.Same(t, mem, Uncached(repo))
	assert.Same(t, mem, Uncached(mem))

	created, err := repo.Create(ctx, newAuthor("jane"))
	require.NoError(t, err)
	_, err = Uncached(repo).FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, c.gets)
	assert.Empty(t, c.data)
}

func TestCachedRepositoryFallsBackWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	c := newFakeCache()
	c.failGet = true
	repo := NewCachedRepository(NewMemoryRepository(), c, time.Minute)

	created, err := repo.Create(ctx, newAuthor("jane"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}
