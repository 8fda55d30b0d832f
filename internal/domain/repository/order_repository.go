package repository

import (
	"context"
	"errors"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByBuyer returns the orders placed by a user, in insertion order.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]entity.Order, error)

	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// Update modifies an existing order.
	Update(ctx context.Context, order *entity.Order) error
}
