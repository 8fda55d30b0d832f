package handler

import (
	"log/slog"
	"net/http"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/domain/entity"
	"stylebank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for plan handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

// ListPlans returns every subscription plan.
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	plans := h.uc.ListPlans(c.Request().Context())

	return response.Success(c, http.StatusOK, plans, "")
}

// GetPlan returns one plan by tier.
func (h *SubscriptionHandler) GetPlan(c echo.Context) error {
	plan, err := h.uc.GetPlan(c.Request().Context(), entity.SubscriptionTier(c.Param("tier")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "")
}

type changeTierRequest struct {
	Tier string `json:"tier" validate:"required"`
}

// ChangeTier switches the authenticated user's subscription tier.
func (h *SubscriptionHandler) ChangeTier(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req changeTierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tier input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.ChangeTier(c.Request().Context(), userID, entity.SubscriptionTier(req.Tier))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUser(user), "Subscription updated")
}
