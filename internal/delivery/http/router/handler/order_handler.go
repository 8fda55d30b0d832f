package handler

import (
	"log/slog"
	"net/http"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/domain/entity"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type checkoutRequest struct {
	OutfitCardID string   `json:"outfitCardId" validate:"required,uuid"`
	ProductIDs   []string `json:"productIds" validate:"dive,uuid"`
}

// Checkout places an order for products on an outfit card. An empty product
// list orders everything on the card.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cardID, err := uuid.Parse(req.OutfitCardID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit card id")
	}

	productIDs := make([]uuid.UUID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid product id")
		}
		productIDs = append(productIDs, id)
	}

	order, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		BuyerUserID:  userID,
		OutfitCardID: cardID,
		ProductIDs:   productIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// GetOrder returns a single order owned by the authenticated buyer.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListOrders returns the buyer's order history.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

type advanceOrderRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdvanceOrder moves an order one step forward in its fulfillment flow.
// Restricted to the seller role via route middleware.
func (h *OrderHandler) AdvanceOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	var req advanceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.AdvanceOrder(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order advanced")
}

// CancelOrder cancels the buyer's order while it is still cancellable.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order cancelled")
}
