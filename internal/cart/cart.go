// Package cart holds the shopping cart state machine. Transitions are
// pure: each returns a new State and never touches storage. Persistence
// is an observer layered on top (see internal/cartstore).
package cart

import "petbhai-backend/internal/domain"

// Item pairs a product snapshot with the requested purchase quantity.
// Quantity is always >= 1; a transition that would drop it to zero
// removes the item instead.
type Item struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// State is an insertion-ordered list of items, at most one per product
// id. New items are appended at the end and updates never re-sort.
type State struct {
	Items []Item `json:"items"`
}

func Empty() State {
	return State{}
}

func (s State) clone() State {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return State{Items: items}
}

// Add puts one unit of the product in the cart, incrementing the
// quantity if the product is already present.
func (s State) Add(p domain.Product) State {
	return s.AddQuantity(p, 1)
}

// AddQuantity behaves like Add repeated n times. n < 1 is treated as 1.
func (s State) AddQuantity(p domain.Product, n int) State {
	if n < 1 {
		n = 1
	}
	next := s.clone()
	for i := range next.Items {
		if next.Items[i].Product.ID == p.ID {
			next.Items[i].Quantity += n
			return next
		}
	}
	next.Items = append(next.Items, Item{Product: p, Quantity: n})
	return next
}

// SetQuantity sets the matching item's quantity. A quantity of zero or
// below removes the item entirely; a zero-quantity entry never exists.
func (s State) SetQuantity(productID, quantity int) State {
	if quantity <= 0 {
		return s.Remove(productID)
	}
	next := s.clone()
	for i := range next.Items {
		if next.Items[i].Product.ID == productID {
			next.Items[i].Quantity = quantity
			break
		}
	}
	return next
}

// Remove drops the item with the matching product id, a no-op if the
// product is not in the cart.
func (s State) Remove(productID int) State {
	next := s.clone()
	for i := range next.Items {
		if next.Items[i].Product.ID == productID {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
			return next
		}
	}
	return next
}

func (s State) Clear() State {
	return State{}
}

// Count is the total number of units across all items.
func (s State) Count() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Total is the cart price in minor currency units. Prices are integers
// so the sum is exact.
func (s State) Total() int {
	total := 0
	for _, item := range s.Items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// OrderItems snapshots the cart for checkout.
func (s State) OrderItems() []domain.OrderItem {
	items := make([]domain.OrderItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = domain.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		}
	}
	return items
}
