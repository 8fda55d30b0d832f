package impl

import (
	"context"
	"log/slog"

	deliverycontext "stylebank/internal/delivery/context"
	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo  repository.OrderRepository
	outfitRepo repository.OutfitCardRepository
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo  repository.OrderRepository
	OutfitRepo repository.OutfitCardRepository
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:  params.OrderRepo,
		outfitRepo: params.OutfitRepo,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout places an order for products of an outfit card. Line items carry a
// price snapshot so later card edits do not rewrite order history.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	card, err := srv.outfitRepo.FindByID(ctx, input.OutfitCardID)
	if err != nil {
		if errors.Is(err, repository.ErrOutfitNotFound) {
			return nil, domainerrors.ErrOutfitNotFound
		}

		return nil, errors.Wrap(err, "failed to find outfit card")
	}

	selected := card.Products
	if len(input.ProductIDs) > 0 {
		wanted := make(map[uuid.UUID]bool, len(input.ProductIDs))
		for _, id := range input.ProductIDs {
			wanted[id] = true
		}

		selected = nil
		for _, p := range card.Products {
			if wanted[p.ID] {
				selected = append(selected, p)
			}
		}
		if len(selected) != len(wanted) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product id in checkout")
		}
	}
	if len(selected) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one product")
	}

	items := make([]entity.OrderItem, 0, len(selected))
	total := 0
	for _, p := range selected {
		items = append(items, entity.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    1,
		})
		total += p.Price
	}

	order := &entity.Order{
		BuyerUserID:  input.BuyerUserID,
		OutfitCardID: card.ID,
		Items:        items,
		TotalAmount:  total,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("buyerID", order.BuyerUserID),
		slog.Int("totalAmount", order.TotalAmount),
	)

	return order, nil
}

// GetOrder returns the buyer's order.
func (srv *orderService) GetOrder(ctx context.Context, buyerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerUserID != buyerID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListOrders returns the buyer's orders in insertion order.
func (srv *orderService) ListOrders(ctx context.Context, buyerID uuid.UUID) ([]entity.Order, error) {
	orders, err := srv.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// AdvanceOrder moves the order one step forward. The status machine only
// walks pending, confirmed, shipped, delivered in that direction.
func (srv *orderService) AdvanceOrder(ctx context.Context, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error) {
	if !target.IsValid() {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(string(target))
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanAdvanceTo(target) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			string(order.Status) + " -> " + string(target))
	}

	order.Status = target
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Order advanced",
		slog.Any("orderID", order.ID),
		slog.String("status", string(order.Status)),
	)

	return order, nil
}

// CancelOrder cancels the buyer's order while it is still pending or confirmed.
func (srv *orderService) CancelOrder(ctx context.Context, buyerID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerUserID != buyerID {
		return nil, domainerrors.ErrForbidden
	}
	if !order.Status.CanCancel() {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			string(order.Status) + " -> " + string(entity.OrderStatusCancelled))
	}

	order.Status = entity.OrderStatusCancelled
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Order cancelled", slog.Any("orderID", order.ID))

	return order, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
