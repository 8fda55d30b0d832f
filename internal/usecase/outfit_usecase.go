package usecase

import (
	"context"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput is one purchasable product attached to a new outfit card.
type ProductInput struct {
	Name         string
	Brand        string
	Price        int
	ImageURL     string
	ExternalLink string
}

// CreateOutfitInput defines the data required to publish an outfit card.
type CreateOutfitInput struct {
	CreatorUserID uuid.UUID
	Title         string
	Description   string
	ImageURL      string
	SourceURL     string
	Products      []ProductInput
}

// AddCommentInput defines the data required to comment on a card.
type AddCommentInput struct {
	OutfitCardID uuid.UUID
	AuthorUserID uuid.UUID
	Content      string
}

// OutfitOutput pairs a card with its revenue estimate under the configured
// strategy.
type OutfitOutput struct {
	Card             entity.OutfitCard
	EstimatedRevenue int
}

// ToggleLikeOutput reports the resulting like state after a toggle.
type ToggleLikeOutput struct {
	Liked bool
	Likes int
}

// OutfitUsecase defines the interface for outfit-card business operations.
type OutfitUsecase interface {
	CreateOutfit(ctx context.Context, input CreateOutfitInput) (*entity.OutfitCard, error)
	GetOutfit(ctx context.Context, outfitID uuid.UUID) (*OutfitOutput, error)
	ListOutfits(ctx context.Context) ([]OutfitOutput, error)
	DeleteOutfit(ctx context.Context, userID, outfitID uuid.UUID) error

	ToggleLike(ctx context.Context, userID, outfitID uuid.UUID) (*ToggleLikeOutput, error)
	AddComment(ctx context.Context, input AddCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, userID, outfitID, commentID uuid.UUID) error

	// ShareQR renders a QR code PNG that resolves back to the outfit card.
	ShareQR(ctx context.Context, outfitID uuid.UUID) ([]byte, error)
}
