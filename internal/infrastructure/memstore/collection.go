// Package memstore is an in-process entity store used by the memory driver and by tests.
package memstore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrDuplicateID = errors.New("memstore: duplicate id")

// Collection keeps records of one entity kind in insertion order.
// Every read and write goes through clone so callers never share memory with the store.
type Collection[T any] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
	clone func(T) T
}

// New creates an empty collection. A nil clone copies values by assignment.
func New[T any](clone func(T) T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Collection[T]{
		items: make(map[uuid.UUID]T),
		clone: clone,
	}
}

func (c *Collection[T]) Insert(id uuid.UUID, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		return ErrDuplicateID
	}
	c.items[id] = c.clone(v)
	c.order = append(c.order, id)
	return nil
}

func (c *Collection[T]) Get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(v), true
}

// Filter returns the records accepted by match, in insertion order.
// A nil match returns every record.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if match == nil || match(v) {
			out = append(out, c.clone(v))
		}
	}
	return out
}

// Update replaces the record under id with fn's result and returns the stored value.
func (c *Collection[T]) Update(id uuid.UUID, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := c.clone(fn(c.clone(v)))
	c.items[id] = updated
	return c.clone(updated), true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
