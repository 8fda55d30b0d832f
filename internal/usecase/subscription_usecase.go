package usecase

import (
	"context"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the interface for plan listing and tier changes.
type SubscriptionUsecase interface {
	ListPlans(ctx context.Context) []entity.SubscriptionPlan
	GetPlan(ctx context.Context, tier entity.SubscriptionTier) (*entity.SubscriptionPlan, error)

	// ChangeTier switches the user's subscription. Payment is out of scope;
	// the switch is applied immediately.
	ChangeTier(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier) (*entity.User, error)

	// HasFeature reports whether the user's current plan includes the feature.
	HasFeature(ctx context.Context, userID uuid.UUID, feature string) (bool, error)
}
