package usecase

import (
	"context"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to place an order against an
// outfit card. An empty ProductIDs slice orders every product on the card.
type CheckoutInput struct {
	BuyerUserID  uuid.UUID
	OutfitCardID uuid.UUID
	ProductIDs   []uuid.UUID
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, error)
	GetOrder(ctx context.Context, buyerID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, buyerID uuid.UUID) ([]entity.Order, error)

	// AdvanceOrder moves the order one step forward to target. Backward or
	// skipping transitions are rejected.
	AdvanceOrder(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error)

	// CancelOrder cancels the buyer's order while it is still cancellable.
	CancelOrder(ctx context.Context, buyerID, orderID uuid.UUID) (*entity.Order, error)
}
