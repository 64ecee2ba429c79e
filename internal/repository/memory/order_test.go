package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/repository"
)

func storedOrder(id, userID string, status domain.OrderStatus) *domain.Order {
	now := time.Now().UTC()
	return &domain.Order{
		ID:     id,
		UserID: userID,
		Status: status,
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "Me-O Tuna Adult Cat Food", Price: 1500, Quantity: 1},
		},
		Total: 1500,
		StatusHistory: []domain.StatusChange{
			{Status: status, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepositoryInsertAndGet(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, storedOrder("PB-1", "user-1", domain.OrderStatusPending)))

	got, err := repo.Get(ctx, "PB-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Len(t, got.StatusHistory, 1)

	assert.ErrorIs(t, repo.Insert(ctx, storedOrder("PB-1", "user-1", domain.OrderStatusPending)),
		repository.ErrAlreadyExists)

	_, err = repo.Get(ctx, "PB-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrderRepositoryGetReturnsCopy(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, storedOrder("PB-1", "user-1", domain.OrderStatusPending)))

	first, err := repo.Get(ctx, "PB-1")
	require.NoError(t, err)
	first.AppendStatus(domain.OrderStatusConfirmed, "mutating a copy")

	second, err := repo.Get(ctx, "PB-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, second.Status)
	assert.Len(t, second.StatusHistory, 1)
}

func TestOrderRepositoryUpdate(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, storedOrder("PB-1", "user-1", domain.OrderStatusPending)),
		repository.ErrNotFound)

	require.NoError(t, repo.Insert(ctx, storedOrder("PB-1", "user-1", domain.OrderStatusPending)))

	updated := storedOrder("PB-1", "user-1", domain.OrderStatusPending)
	updated.AppendStatus(domain.OrderStatusConfirmed, "payment received")
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "PB-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, got.Status)
	assert.Len(t, got.StatusHistory, 2)
}

func TestOrderRepositoryListFiltersAndPaginates(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, storedOrder("PB-a", "user-1", domain.OrderStatusPending)))
	require.NoError(t, repo.Insert(ctx, storedOrder("PB-b", "user-2", domain.OrderStatusPending)))
	require.NoError(t, repo.Insert(ctx, storedOrder("PB-c", "user-1", domain.OrderStatusShipped)))

	// newest first, no filters
	all, total, err := repo.List(ctx, repository.OrderQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "PB-c", all[0].ID)

	// user filter
	mine, total, err := repo.List(ctx, repository.OrderQuery{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "PB-c", mine[0].ID)
	assert.Equal(t, "PB-a", mine[1].ID)

	// status filter combined with user filter
	shipped, total, err := repo.List(ctx, repository.OrderQuery{
		UserID: "user-1",
		Status: domain.OrderStatusShipped,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "PB-c", shipped[0].ID)

	// second page of one keeps the full match count
	page2, total, err := repo.List(ctx, repository.OrderQuery{
		UserID: "user-1", Page: 2, Limit: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "PB-a", page2[0].ID)

	// page past the end is empty, not an error
	empty, total, err := repo.List(ctx, repository.OrderQuery{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, empty)
}
