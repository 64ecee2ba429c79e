package cartstore

import (
	"context"
	"sync"

	"petbhai-backend/internal/cart"
)

// MemoryStore keeps serialized carts in process memory. It stores the
// encoded form rather than the State so its semantics (including the
// corrupt-slot path) match the Redis store exactly.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string) (cart.State, error) {
	s.mu.RLock()
	raw, ok := s.slots[keyPrefix+key]
	s.mu.RUnlock()
	if !ok {
		return cart.Empty(), nil
	}

	state, valid := decode(raw)
	if !valid {
		_ = s.Clear(ctx, key)
		return cart.Empty(), nil
	}
	return state, nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, state cart.State) error {
	raw, err := encode(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[keyPrefix+key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.slots, keyPrefix+key)
	s.mu.Unlock()
	return nil
}
