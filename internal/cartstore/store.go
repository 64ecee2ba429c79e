// Package cartstore persists cart state between sessions. The store is
// an observer of the cart state machine, never an authority: a load
// that finds corrupted data clears the slot and reports an empty cart,
// and callers treat write failures as log-and-continue. The cart must
// keep working in the current session even when persistence is broken.
package cartstore

import (
	"context"
	"encoding/json"

	"petbhai-backend/internal/cart"
)

// keyPrefix namespaces cart slots the way the storefront namespaces its
// storage keys.
const keyPrefix = "petbhai:cart:"

type Store interface {
	// Load returns the persisted cart for the key, or an empty cart if
	// nothing (or nothing usable) is stored. Corruption is not an error.
	Load(ctx context.Context, key string) (cart.State, error)
	Save(ctx context.Context, key string, state cart.State) error
	Clear(ctx context.Context, key string) error
}

// decode parses a persisted slot. ok is false when the payload is not a
// valid cart, in which case the caller drops the slot.
func decode(raw []byte) (cart.State, bool) {
	var state cart.State
	if err := json.Unmarshal(raw, &state); err != nil {
		return cart.Empty(), false
	}
	if state.Items == nil {
		state.Items = []cart.Item{}
	}
	for _, item := range state.Items {
		if item.Quantity < 1 {
			return cart.Empty(), false
		}
	}
	return state, true
}

func encode(state cart.State) ([]byte, error) {
	return json.Marshal(state)
}
