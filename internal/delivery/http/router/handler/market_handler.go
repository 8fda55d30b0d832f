package handler

import (
	"log/slog"
	"net/http"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MarketHandler holds dependencies for seller comparison and creator handlers.
type MarketHandler struct {
	uc     usecase.MarketUsecase
	logger *slog.Logger
}

// NewMarketHandler is the constructor for MarketHandler, injected by Fx.
func NewMarketHandler(uc usecase.MarketUsecase, logger *slog.Logger) *MarketHandler {
	return &MarketHandler{uc: uc, logger: logger}
}

// ListSellers returns every seller profile.
func (h *MarketHandler) ListSellers(c echo.Context) error {
	sellers, err := h.uc.ListSellers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "")
}

// CompareSellers returns sellers with the winner per comparison axis.
func (h *MarketHandler) CompareSellers(c echo.Context) error {
	comparison, err := h.uc.CompareSellers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comparison, "")
}

// ListCreators returns creator profiles with the viewer's follow state.
func (h *MarketHandler) ListCreators(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	creators, err := h.uc.ListCreators(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, creators, "")
}

// FollowCreator adds the viewer to a creator's follower set.
func (h *MarketHandler) FollowCreator(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid creator id")
	}

	profile, err := h.uc.FollowCreator(c.Request().Context(), userID, creatorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Creator followed")
}

// UnfollowCreator removes the viewer from a creator's follower set.
func (h *MarketHandler) UnfollowCreator(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	creatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid creator id")
	}

	profile, err := h.uc.UnfollowCreator(c.Request().Context(), userID, creatorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Creator unfollowed")
}
