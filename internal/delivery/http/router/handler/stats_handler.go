package handler

import (
	"log/slog"
	"net/http"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatsHandler holds dependencies for the dashboard handler.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

// GetDashboard returns the authenticated user's aggregate numbers.
func (h *StatsHandler) GetDashboard(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	dashboard, err := h.uc.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}
