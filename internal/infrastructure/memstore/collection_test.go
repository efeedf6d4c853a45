package memstore

import (
	"slices"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string
	Tags []string
}

func cloneRecord(r record) record {
	r.Tags = slices.Clone(r.Tags)
	return r
}

func TestCollectionKeepsInsertionOrder(t *testing.T) {
	c := New(cloneRecord)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		require.NoError(t, c.Insert(id, record{Name: string(rune('a' + i))}))
	}

	all := c.Filter(nil)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Equal(t, "c", all[2].Name)

	onlyB := c.Filter(func(r record) bool { return r.Name == "b" })
	require.Len(t, onlyB, 1)
	assert.Equal(t, "b", onlyB[0].Name)
}

func TestCollectionRejectsDuplicateID(t *testing.T) {
	c := New[record](nil)
	id := uuid.New()

	require.NoError(t, c.Insert(id, record{Name: "first"}))
	assert.ErrorIs(t, c.Insert(id, record{Name: "second"}), ErrDuplicateID)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionIsolatesCallers(t *testing.T) {
	c := New(cloneRecord)
	id := uuid.New()
	original := record{Name: "x", Tags: []string{"one"}}
	require.NoError(t, c.Insert(id, original))

	original.Tags[0] = "mutated"
	got, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, []string{"one"}, got.Tags)

	got.Tags[0] = "mutated again"
	again, _ := c.Get(id)
	assert.Equal(t, []string{"one"}, again.Tags)
}

func TestCollectionUpdate(t *testing.T) {
	c := New(cloneRecord)
	id := uuid.New()
	require.NoError(t, c.Insert(id, record{Name: "x"}))

	updated, ok := c.Update(id, func(r record) record {
		r.Tags = append(r.Tags, "added")
		return r
	})
	require.True(t, ok)
	assert.Equal(t, []string{"added"}, updated.Tags)

	_, ok = c.Update(uuid.New(), func(r record) record { return r })
	assert.False(t, ok)
}

func TestCollectionConcurrentUpdates(t *testing.T) {
	c := New(cloneRecord)
	id := uuid.New()
	require.NoError(t, c.Insert(id, record{}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(id, func(r record) record {
				r.Tags = append(r.Tags, "t")
				return r
			})
		}()
	}
	wg.Wait()

	got, _ := c.Get(id)
	assert.Len(t, got.Tags, 50)
}
