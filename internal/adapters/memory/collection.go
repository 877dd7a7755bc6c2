// Package memory provides the in-memory reference implementation of the DAO
// ports. Each DAO wraps an insertion-ordered collection and answers queries
// by linear scan. Entities are stored by reference: a caller holding the same
// pointer sees later mutations and vice versa.
package memory

import (
	"slices"
	"sync"
)

// collection is an insertion-ordered list guarded by a RWMutex.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// appendIf runs check against the current contents and appends item only if
// check returns nil. Both happen under one write lock, so a rejected item
// leaves the collection untouched.
func (c *collection[T]) appendIf(item T, check func(items []T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := check(c.items); err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// first returns the earliest item satisfying match.
func (c *collection[T]) first(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := slices.IndexFunc(c.items, match); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// filter returns a new slice of the items satisfying match, in order.
func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// snapshot returns a copy of all items. Changing the returned slice does not
// affect the collection.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// removeIf deletes every item satisfying match and reports how many went.
func (c *collection[T]) removeIf(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, match)
	return before - len(c.items)
}
