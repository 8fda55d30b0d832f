package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. Transitions are
// append-only: an order only moves forward, except for an explicit cancel.
type OrderStatus string

const (
	// OrderStatusPending is the initial state after checkout.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed means the seller accepted the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped means the order left the seller.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is the terminal success state.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is the terminal failure state.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// next returns the forward transition for a status, or "" for terminal states.
func (s OrderStatus) next() OrderStatus {
	switch s {
	case OrderStatusPending:
		return OrderStatusConfirmed
	case OrderStatusConfirmed:
		return OrderStatusShipped
	case OrderStatusShipped:
		return OrderStatusDelivered
	default:
		return ""
	}
}

// CanAdvanceTo reports whether the status may move to target in one step.
func (s OrderStatus) CanAdvanceTo(target OrderStatus) bool {
	return s.next() == target && target != ""
}

// CanCancel reports whether an order in this status may still be cancelled.
// Once shipped, the order cannot be pulled back.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   int       `json:"unitPrice"`
	Quantity    int       `json:"quantity"`
}

// Order records a checkout against an outfit card's products.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	BuyerUserID  uuid.UUID   `json:"buyerUserId"`
	OutfitCardID uuid.UUID   `json:"outfitCardId"`
	Items        []OrderItem `json:"items"`
	TotalAmount  int         `json:"totalAmount"` // Sum of unitPrice * quantity over all items.
	Status       OrderStatus `json:"status"`
	Version      int         `json:"version"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
