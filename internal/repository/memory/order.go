package memory

import (
	"context"
	"sync"

	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/repository"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	// newest first for listing
	ids []string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]domain.Order)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return repository.ErrAlreadyExists
	}
	r.orders[order.ID] = cloneOrder(order)
	r.ids = append([]string{order.ID}, r.ids...)
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneOrder(&order)
	return &out, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; !exists {
		return repository.ErrNotFound
	}
	r.orders[order.ID] = cloneOrder(order)
	return nil
}

func (r *OrderRepository) List(ctx context.Context, q repository.OrderQuery) ([]domain.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Order, 0)
	for _, id := range r.ids {
		order := r.orders[id]
		if q.UserID != "" && order.UserID != q.UserID {
			continue
		}
		if q.Status != "" && order.Status != q.Status {
			continue
		}
		matched = append(matched, cloneOrder(&order))
	}

	total := len(matched)
	if q.Limit <= 0 {
		return matched, total, nil
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * q.Limit
	if start >= total {
		return []domain.Order{}, total, nil
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// cloneOrder deep-copies the slices so a caller appending to the status
// history cannot reach into the stored value.
func cloneOrder(o *domain.Order) domain.Order {
	out := *o
	out.Items = make([]domain.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	out.StatusHistory = make([]domain.StatusChange, len(o.StatusHistory))
	copy(out.StatusHistory, o.StatusHistory)
	return out
}
