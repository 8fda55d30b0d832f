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

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlans returns the static plan table.
func (srv *subscriptionService) ListPlans(_ context.Context) []entity.SubscriptionPlan {
	return entity.AllPlans()
}

// GetPlan returns the plan for a tier.
func (srv *subscriptionService) GetPlan(_ context.Context, tier entity.SubscriptionTier) (*entity.SubscriptionPlan, error) {
	if !tier.IsValid() {
		return nil, domainerrors.ErrInvalidTier.WithDetails(string(tier))
	}

	plan := entity.PlanFor(tier)

	return &plan, nil
}

// ChangeTier switches the user's subscription tier immediately.
func (srv *subscriptionService) ChangeTier(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) (*entity.User, error) {
	if !tier.IsValid() {
		return nil, domainerrors.ErrInvalidTier.WithDetails(string(tier))
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Subscription == tier {
		return user, nil
	}

	user.Subscription = tier
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update subscription tier")
	}

	srv.log(ctx).Info("Subscription tier changed",
		slog.Any("userID", userID),
		slog.String("tier", string(tier)),
	)

	return user, nil
}

// HasFeature reports whether the user's current plan includes the feature.
func (srv *subscriptionService) HasFeature(ctx context.Context, userID uuid.UUID, feature string) (bool, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return entity.PlanFor(user.Subscription).Limits.HasFeature(feature), nil
}

func (srv *subscriptionService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
