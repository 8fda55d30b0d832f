package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClosetHandler holds dependencies for closet-related handlers.
type ClosetHandler struct {
	uc     usecase.ClosetUsecase
	logger *slog.Logger
}

// NewClosetHandler is the constructor for ClosetHandler, injected by Fx.
func NewClosetHandler(uc usecase.ClosetUsecase, logger *slog.Logger) *ClosetHandler {
	return &ClosetHandler{uc: uc, logger: logger}
}

type addItemRequest struct {
	Name          string    `json:"name" validate:"required"`
	Brand         string    `json:"brand"`
	PurchasePrice int       `json:"purchasePrice" validate:"required,gt=0"`
	PurchaseDate  time.Time `json:"purchaseDate"`
	ImageURL      string    `json:"imageUrl"`
}

// AddItem registers a closet item for the authenticated user.
func (h *ClosetHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		OwnerUserID:   userID,
		Name:          req.Name,
		Brand:         req.Brand,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added")
}

// GetCloset lists the authenticated user's items with derived values.
func (h *ClosetHandler) GetCloset(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	items, err := h.uc.GetCloset(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// LogWear records a wear event for an item.
func (h *ClosetHandler) LogWear(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	output, err := h.uc.LogWear(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Wear logged")
}

// ToggleVisibility flips community visibility for an item.
func (h *ClosetHandler) ToggleVisibility(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	item, err := h.uc.ToggleVisibility(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Visibility toggled")
}

// DeleteItem removes an item from the closet.
func (h *ClosetHandler) DeleteItem(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted")
}

// ConnectInstagram links the user's Instagram account.
func (h *ClosetHandler) ConnectInstagram(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.uc.ConnectInstagram(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Instagram connected")
}

// DisconnectInstagram removes the link.
func (h *ClosetHandler) DisconnectInstagram(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.uc.DisconnectInstagram(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Instagram disconnected")
}

// ImportFromInstagram auto-registers items from the user's posts.
func (h *ClosetHandler) ImportFromInstagram(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	output, err := h.uc.ImportFromInstagram(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Import completed")
}
