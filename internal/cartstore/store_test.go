package cartstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petbhai-backend/internal/cart"
	"petbhai-backend/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := cart.Empty().
		Add(domain.Product{ID: 1, Name: "Me-O Tuna", Price: 1500}).
		AddQuantity(domain.Product{ID: 2, Name: "Pedigree", Price: 2000}, 3)

	require.NoError(t, store.Save(ctx, "user-1", state))

	loaded, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, state.Items, loaded.Items)
	assert.Equal(t, 7500, loaded.Total())
}

func TestLoadMissingKeyReturnsEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Load(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCorruptedSlotIsDroppedNotFatal(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"wrong shape", `"just a string"`},
		{"zero quantity entry", `{"items":[{"product":{"id":1},"quantity":0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.slots[keyPrefix+"user-1"] = []byte(tt.raw)

			state, err := store.Load(ctx, "user-1")
			require.NoError(t, err)
			assert.Empty(t, state.Items)

			// the slot is cleared, not left to fail again
			_, stillThere := store.slots[keyPrefix+"user-1"]
			assert.False(t, stillThere)
		})
	}
}

func TestClearRemovesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	state := cart.Empty().Add(domain.Product{ID: 1, Price: 100})
	require.NoError(t, store.Save(ctx, "user-1", state))
	require.NoError(t, store.Clear(ctx, "user-1"))

	loaded, err := store.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestStoresAreIsolatedByKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := cart.Empty().Add(domain.Product{ID: 1, Price: 100})
	b := cart.Empty().AddQuantity(domain.Product{ID: 2, Price: 200}, 2)
	require.NoError(t, store.Save(ctx, "user-a", a))
	require.NoError(t, store.Save(ctx, "user-b", b))

	gotA, err := store.Load(ctx, "user-a")
	require.NoError(t, err)
	gotB, err := store.Load(ctx, "user-b")
	require.NoError(t, err)

	assert.Equal(t, 100, gotA.Total())
	assert.Equal(t, 400, gotB.Total())
}
