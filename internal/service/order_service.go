package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"petbhai-backend/internal/cartstore"
	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/events"
	"petbhai-backend/internal/repository"
)

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrCancelNotAllowed  = errors.New("order can no longer be cancelled")
)

// StockError carries the per-item shortage messages for the 409
// response body.
type StockError struct {
	Details []string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d item(s)", len(e.Details))
}

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	carts     cartstore.Store
	publisher events.Publisher
	logger    *zap.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	carts cartstore.Store,
	publisher events.Publisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		carts:     carts,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout turns the user's current cart snapshot into a pending order:
// validate stock against the catalog, price from the catalog (not the
// possibly stale cart snapshot), persist, decrement stock, clear the
// cart, publish. Stock shortages are collected across all lines so the
// shopper sees every problem at once.
func (s *OrderService) Checkout(ctx context.Context, userID, address string) (*domain.Order, error) {
	state, err := s.carts.Load(ctx, userID)
	if err != nil {
		// persistence trouble never blocks the session's cart; here
		// there is nothing else to fall back on
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(state.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]domain.OrderItem, 0, len(state.Items))
	total := 0
	var shortages []string
	fetched := make([]*domain.Product, 0, len(state.Items))

	for _, line := range state.Items {
		product, err := s.products.Get(ctx, line.Product.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				shortages = append(shortages, fmt.Sprintf("%s: no longer available", line.Product.Name))
				continue
			}
			return nil, fmt.Errorf("failed to look up product %d: %w", line.Product.ID, err)
		}
		if product.Stock < line.Quantity {
			shortages = append(shortages, fmt.Sprintf("%s: requested %d, only %d available",
				product.Name, line.Quantity, product.Stock))
			continue
		}
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
		})
		total += product.Price * line.Quantity
		fetched = append(fetched, product)
	}
	if len(shortages) > 0 {
		return nil, &StockError{Details: shortages}
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:        domain.NewOrderID(now),
		UserID:    userID,
		Address:   address,
		Items:     items,
		Total:     total,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		StatusHistory: []domain.StatusChange{{
			Status:    domain.OrderStatusPending,
			Timestamp: now,
			Note:      "order placed",
		}},
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for i, line := range items {
		product := fetched[i]
		product.Stock -= line.Quantity
		if err := s.products.Update(ctx, product); err != nil {
			s.logger.Error("failed to decrement stock",
				zap.Int("product_id", product.ID),
				zap.String("order_id", order.ID),
				zap.Error(err))
		}
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("user_id", userID), zap.Error(err))
	}

	if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
		s.logger.Warn("failed to publish order.created",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("total", total))
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if userID != "" && order.UserID != userID {
		// hide other users' orders rather than admitting they exist
		return nil, repository.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, q repository.OrderQuery) ([]domain.Order, int, error) {
	if q.Status != "" && !domain.ValidOrderStatus(q.Status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.orders.List(ctx, q)
}

// UpdateStatus is the admin transition path. Moves are validated
// against the status graph; each accepted move appends to the
// append-only history.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, note string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	from := order.Status
	order.AppendStatus(status, note)
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if err := s.publisher.PublishOrderStatusChanged(ctx, order, from, note); err != nil {
		s.logger.Warn("failed to publish order.status_changed",
			zap.String("order_id", order.ID), zap.Error(err))
	}
	return order, nil
}

// Cancel is the shopper-facing path: accepted only while the order is
// pending or confirmed.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID, reason string) (*domain.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanCancel() {
		return nil, fmt.Errorf("%w: status is %s", ErrCancelNotAllowed, order.Status)
	}

	from := order.Status
	note := reason
	if note == "" {
		note = "cancelled by customer"
	}
	order.AppendStatus(domain.OrderStatusCancelled, note)
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}

	if err := s.publisher.PublishOrderStatusChanged(ctx, order, from, note); err != nil {
		s.logger.Warn("failed to publish order.status_changed",
			zap.String("order_id", order.ID), zap.Error(err))
	}
	return order, nil
}

// Track returns the audit trail for an order.
func (s *OrderService) Track(ctx context.Context, userID, orderID string) ([]domain.StatusChange, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return order.StatusHistory, nil
}

type OrderStats struct {
	Total    int                        `json:"total"`
	ByStatus map[domain.OrderStatus]int `json:"byStatus"`
	Revenue  int                        `json:"revenue"`
}

// Stats summarizes a user's orders. Revenue excludes cancelled and
// refunded orders.
func (s *OrderService) Stats(ctx context.Context, userID string) (*OrderStats, error) {
	orders, _, err := s.orders.List(ctx, repository.OrderQuery{UserID: userID})
	if err != nil {
		return nil, err
	}

	stats := &OrderStats{ByStatus: make(map[domain.OrderStatus]int)}
	for _, order := range orders {
		stats.Total++
		stats.ByStatus[order.Status]++
		if order.Status != domain.OrderStatusCancelled && order.Status != domain.OrderStatusRefunded {
			stats.Revenue += order.Total
		}
	}
	return stats, nil
}
