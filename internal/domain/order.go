package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func ValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusRefunded:
		return true
	}
	return false
}

// orderTransitions is the allowed status graph. The happy path moves
// forward only; refunds are reachable from cancellation or delivery.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {OrderStatusRefunded},
	OrderStatusCancelled:  {OrderStatusRefunded},
	OrderStatusRefunded:   {},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusChange is one entry in an order's audit trail. The history is
// append-only; entries are never rewritten.
type StatusChange struct {
	Status    OrderStatus `bson:"status" json:"status"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp"`
	Note      string      `bson:"note,omitempty" json:"note,omitempty"`
}

type OrderItem struct {
	ProductID int    `bson:"productId" json:"productId"`
	Name      string `bson:"name" json:"name"`
	Price     int    `bson:"price" json:"price"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID            string         `bson:"orderId" json:"id"`
	UserID        string         `bson:"userId" json:"userId"`
	Address       string         `bson:"address" json:"address"`
	Items         []OrderItem    `bson:"items" json:"items"`
	Total         int            `bson:"total" json:"total"`
	Status        OrderStatus    `bson:"status" json:"status"`
	StatusHistory []StatusChange `bson:"statusHistory" json:"statusHistory"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// CanCancel reports whether a cancellation request is still accepted.
// Once an order is processing it has left the warehouse queue.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// AppendStatus moves the order to the given status and records the
// change. It does not validate the transition; callers check
// CanTransition first.
func (o *Order) AppendStatus(status OrderStatus, note string) {
	now := time.Now().UTC()
	o.Status = status
	o.UpdatedAt = now
	o.StatusHistory = append(o.StatusHistory, StatusChange{
		Status:    status,
		Timestamp: now,
		Note:      note,
	})
}

// NewOrderID builds an order identifier from the creation timestamp
// plus a random suffix, matching the storefront's order number format.
func NewOrderID(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// fall back to the timestamp alone; collisions within the same
		// millisecond are unrealistic at this traffic level
		return fmt.Sprintf("PB-%d", now.UnixMilli())
	}
	return fmt.Sprintf("PB-%d-%s", now.UnixMilli(), hex.EncodeToString(buf))
}
