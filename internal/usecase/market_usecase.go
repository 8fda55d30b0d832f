package usecase

import (
	"context"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// SellerComparison points at the winning seller per comparison axis.
type SellerComparison struct {
	Sellers    []entity.SellerProfile
	BestPrice  *entity.SellerProfile // Lowest average price.
	BestRating *entity.SellerProfile // Highest rating.
	BestSales  *entity.SellerProfile // Highest total sales.
}

// CreatorOutput pairs a creator profile with the viewer's follow state.
type CreatorOutput struct {
	Profile      entity.CreatorProfile
	FollowedByMe bool
}

// MarketUsecase defines the interface for the seller comparison and creator
// following operations.
type MarketUsecase interface {
	ListSellers(ctx context.Context) ([]entity.SellerProfile, error)
	CompareSellers(ctx context.Context) (*SellerComparison, error)

	ListCreators(ctx context.Context, viewerID uuid.UUID) ([]CreatorOutput, error)
	FollowCreator(ctx context.Context, userID, creatorID uuid.UUID) (*entity.CreatorProfile, error)
	UnfollowCreator(ctx context.Context, userID, creatorID uuid.UUID) (*entity.CreatorProfile, error)
}
