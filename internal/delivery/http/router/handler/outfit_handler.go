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

// OutfitHandler holds dependencies for outfit-card handlers.
type OutfitHandler struct {
	uc     usecase.OutfitUsecase
	logger *slog.Logger
}

// NewOutfitHandler is the constructor for OutfitHandler, injected by Fx.
func NewOutfitHandler(uc usecase.OutfitUsecase, logger *slog.Logger) *OutfitHandler {
	return &OutfitHandler{uc: uc, logger: logger}
}

type productRequest struct {
	Name         string `json:"name" validate:"required"`
	Brand        string `json:"brand"`
	Price        int    `json:"price" validate:"required,gt=0"`
	ImageURL     string `json:"imageUrl"`
	ExternalLink string `json:"externalLink"`
}

type createOutfitRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	SourceURL   string           `json:"sourceUrl"`
	Products    []productRequest `json:"products" validate:"dive"`
}

// CreateOutfit publishes a new outfit card for the authenticated creator.
func (h *OutfitHandler) CreateOutfit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req createOutfitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	products := make([]usecase.ProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, usecase.ProductInput{
			Name:         p.Name,
			Brand:        p.Brand,
			Price:        p.Price,
			ImageURL:     p.ImageURL,
			ExternalLink: p.ExternalLink,
		})
	}

	card, err := h.uc.CreateOutfit(c.Request().Context(), usecase.CreateOutfitInput{
		CreatorUserID: userID,
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		SourceURL:     req.SourceURL,
		Products:      products,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, card, "Outfit published")
}

// GetOutfit returns a single card with its revenue estimate.
func (h *OutfitHandler) GetOutfit(c echo.Context) error {
	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	output, err := h.uc.GetOutfit(c.Request().Context(), outfitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListOutfits returns the community feed.
func (h *OutfitHandler) ListOutfits(c echo.Context) error {
	outputs, err := h.uc.ListOutfits(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "")
}

// DeleteOutfit removes a card. Only its creator may do so.
func (h *OutfitHandler) DeleteOutfit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	if err := h.uc.DeleteOutfit(c.Request().Context(), userID, outfitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Outfit deleted")
}

// ToggleLike flips the viewer's like on a card.
func (h *OutfitHandler) ToggleLike(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), userID, outfitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// AddComment appends a comment to a card.
func (h *OutfitHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.AddComment(c.Request().Context(), usecase.AddCommentInput{
		OutfitCardID: outfitID,
		AuthorUserID: userID,
		Content:      req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added")
}

// DeleteComment removes the author's own comment.
func (h *OutfitHandler) DeleteComment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment id")
	}

	if err := h.uc.DeleteComment(c.Request().Context(), userID, outfitID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted")
}

// ShareQR streams a QR code PNG that resolves back to the outfit card.
func (h *OutfitHandler) ShareQR(c echo.Context) error {
	outfitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outfit id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), outfitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
