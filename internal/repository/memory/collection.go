// Package memory provides in-process implementations of the repository
// interfaces. This is the default storage for the demo deployment:
// everything resets on restart, which is the documented behavior.
package memory

import (
	"sync"

	"petbhai-backend/internal/repository"
)

// collection is a mutex-guarded, insertion-ordered map. Values are
// copied on read so callers can mutate their copy freely and commit it
// back through update.
type collection[T any] struct {
	mu    sync.RWMutex
	byID  map[int]T
	order []int
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[int]T)}
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) get(id int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return v, nil
}

func (c *collection[T]) insert(id int, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[id]; exists {
		return repository.ErrAlreadyExists
	}
	c.byID[id] = v
	c.order = append(c.order, id)
	return nil
}

func (c *collection[T]) update(id int, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[id]; !exists {
		return repository.ErrNotFound
	}
	c.byID[id] = v
	return nil
}

// nextID returns one past the highest id in use. Insert reports
// ErrAlreadyExists if another writer claims the id first.
func (c *collection[T]) nextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	max := 0
	for id := range c.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}
