// Package events publishes order lifecycle events for downstream
// consumers (notification and fulfilment hooks). Publishing is
// best-effort: the order write has already committed and a missed event
// is logged, never surfaced to the shopper.
package events

import (
	"context"
	"time"

	"petbhai-backend/internal/domain"
)

const (
	SubjectOrderCreated       = "order.created"
	SubjectOrderStatusChanged = "order.status_changed"
)

type OrderCreatedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Total     int       `json:"total"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderStatusChangedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   string             `json:"order_id"`
	From      domain.OrderStatus `json:"from"`
	To        domain.OrderStatus `json:"to"`
	Note      string             `json:"note,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
}

type Publisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
	PublishOrderStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus, note string) error
	Close()
}

// NoopPublisher stands in when no broker is configured; the service
// runs fine without one.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(ctx context.Context, order *domain.Order) error {
	return nil
}

func (NoopPublisher) PublishOrderStatusChanged(ctx context.Context, order *domain.Order, from domain.OrderStatus, note string) error {
	return nil
}

func (NoopPublisher) Close() {}
