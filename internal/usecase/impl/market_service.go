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

// marketService implements the MarketUsecase interface.
type marketService struct {
	sellerRepo  repository.SellerProfileRepository
	creatorRepo repository.CreatorProfileRepository
	logger      *slog.Logger
}

// MarketServiceParams holds dependencies for MarketService, injected by Fx.
type MarketServiceParams struct {
	fx.In

	SellerRepo  repository.SellerProfileRepository
	CreatorRepo repository.CreatorProfileRepository
	Logger      *slog.Logger
}

// NewMarketService is the constructor for marketService.
func NewMarketService(params MarketServiceParams) usecase.MarketUsecase {
	return &marketService{
		sellerRepo:  params.SellerRepo,
		creatorRepo: params.CreatorRepo,
		logger:      params.Logger,
	}
}

func (srv *marketService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSellers returns every seller card for the comparison page.
func (srv *marketService) ListSellers(ctx context.Context) ([]entity.SellerProfile, error) {
	sellers, err := srv.sellerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// CompareSellers picks the winning seller per axis. First listed wins ties so
// the result is stable across calls.
func (srv *marketService) CompareSellers(ctx context.Context) (*usecase.SellerComparison, error) {
	sellers, err := srv.sellerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	comparison := &usecase.SellerComparison{Sellers: sellers}
	for i := range sellers {
		s := &sellers[i]
		if comparison.BestPrice == nil || s.AveragePrice < comparison.BestPrice.AveragePrice {
			comparison.BestPrice = s
		}
		if comparison.BestRating == nil || s.Rating > comparison.BestRating.Rating {
			comparison.BestRating = s
		}
		if comparison.BestSales == nil || s.TotalSales > comparison.BestSales.TotalSales {
			comparison.BestSales = s
		}
	}

	return comparison, nil
}

// ListCreators returns every creator card with the viewer's follow state.
func (srv *marketService) ListCreators(ctx context.Context, viewerID uuid.UUID) ([]usecase.CreatorOutput, error) {
	creators, err := srv.creatorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creators")
	}

	outputs := make([]usecase.CreatorOutput, 0, len(creators))
	for i := range creators {
		outputs = append(outputs, usecase.CreatorOutput{
			Profile:      creators[i],
			FollowedByMe: creators[i].IsFollowedBy(viewerID),
		})
	}

	return outputs, nil
}

// FollowCreator adds the user to the creator's follower set. Following twice
// is a no-op.
func (srv *marketService) FollowCreator(ctx context.Context, userID, creatorID uuid.UUID) (*entity.CreatorProfile, error) {
	creator, err := srv.findCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	if creator.Follow(userID) {
		if err := srv.creatorRepo.Update(ctx, creator); err != nil {
			return nil, errors.Wrap(err, "failed to update creator profile")
		}
		srv.log(ctx).Debug("Creator followed",
			slog.Any("creatorID", creatorID),
			slog.Int("followers", creator.Followers),
		)
	}

	return creator, nil
}

// UnfollowCreator removes the user from the follower set. Unfollowing a
// creator the user never followed is a no-op.
func (srv *marketService) UnfollowCreator(ctx context.Context, userID, creatorID uuid.UUID) (*entity.CreatorProfile, error) {
	creator, err := srv.findCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	if creator.Unfollow(userID) {
		if err := srv.creatorRepo.Update(ctx, creator); err != nil {
			return nil, errors.Wrap(err, "failed to update creator profile")
		}
	}

	return creator, nil
}

func (srv *marketService) findCreator(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorProfile, error) {
	creator, err := srv.creatorRepo.FindByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, repository.ErrCreatorNotFound) {
			return nil, domainerrors.ErrCreatorNotFound
		}

		return nil, errors.Wrap(err, "failed to find creator profile")
	}

	return creator, nil
}
