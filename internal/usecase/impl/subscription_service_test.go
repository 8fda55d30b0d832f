package impl

import (
	"context"
	"testing"

	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Plans(t *testing.T) {
	env := newTestEnv(t)
	srv := env.subscriptionService()
	ctx := context.Background()

	plans := srv.ListPlans(ctx)
	require.Len(t, plans, 3)
	assert.Equal(t, entity.TierFree, plans[0].Tier)
	assert.Equal(t, 10, plans[0].Limits.MaxItems)
	assert.Equal(t, 9900, plans[1].MonthlyPrice)
	assert.True(t, plans[2].Limits.PrioritySupport)

	pro, err := srv.GetPlan(ctx, entity.TierPro)
	require.NoError(t, err)
	assert.True(t, pro.Limits.InstagramSync)
	assert.Zero(t, pro.Limits.MaxItems)

	_, err = srv.GetPlan(ctx, entity.SubscriptionTier("diamond"))
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TIER", appErr.ErrorCode())
}

func TestSubscriptionService_ChangeTier(t *testing.T) {
	env := newTestEnv(t)
	srv := env.subscriptionService()
	ctx := context.Background()
	user := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	upgraded, err := srv.ChangeTier(ctx, user.ID, entity.TierPro)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, upgraded.Subscription)

	has, err := srv.HasFeature(ctx, user.ID, entity.FeatureInstagramSync)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = srv.HasFeature(ctx, user.ID, entity.FeatureAIStyling)
	require.NoError(t, err)
	assert.False(t, has)

	// Same tier again is a no-op, not an error.
	same, err := srv.ChangeTier(ctx, user.ID, entity.TierPro)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPro, same.Subscription)

	_, err = srv.ChangeTier(ctx, user.ID, entity.SubscriptionTier("diamond"))
	assert.Error(t, err)
}
