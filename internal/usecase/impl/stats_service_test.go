package impl

import (
	"context"
	"testing"

	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetDashboard(t *testing.T) {
	env := newTestEnv(t)
	srv := env.statsService()
	ctx := context.Background()
	owner := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	// 90 days old with 15 wears: utilization 50, resale 131970.
	jacket := createItem(t, env, owner, "Leather jacket", 159000, fixedNow().AddDate(0, 0, -90))
	jacket.WearCount = 15
	require.NoError(t, env.items.Update(ctx, jacket))

	// 30 days old, never worn: utilization 0.
	createItem(t, env, owner, "White shirt", 29900, fixedNow().AddDate(0, 0, -30))

	owner.AddPoints(150)
	require.NoError(t, env.users.Update(ctx, owner))

	out, err := srv.GetDashboard(ctx, owner.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalItems)
	assert.Equal(t, 159000+29900, out.TotalSpend)
	assert.Equal(t, 150, out.TotalPoints)
	assert.Equal(t, 15, out.TotalWearCount)
	assert.Equal(t, 25, out.AverageUtilization) // round((50+0)/2)
	assert.Positive(t, out.TotalResaleValue)

	require.Len(t, out.TopItems, 2)
	assert.Equal(t, "Leather jacket", out.TopItems[0].Item.Name)

	// 2025-03 (jacket) and 2025-05 (shirt), newest first.
	require.Len(t, out.MonthlySpend, 2)
	assert.Equal(t, "2025-05", out.MonthlySpend[0].Month)
	assert.Equal(t, 29900, out.MonthlySpend[0].Amount)
	assert.Equal(t, "2025-03", out.MonthlySpend[1].Month)
	assert.Equal(t, 159000, out.MonthlySpend[1].Amount)
}

func TestStatsService_GetDashboard_Empty(t *testing.T) {
	env := newTestEnv(t)
	srv := env.statsService()
	ctx := context.Background()
	owner := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	out, err := srv.GetDashboard(ctx, owner.ID)

	require.NoError(t, err)
	assert.Zero(t, out.TotalItems)
	assert.Zero(t, out.TotalSpend)
	assert.Zero(t, out.AverageUtilization)
	assert.Empty(t, out.MonthlySpend)
	assert.Empty(t, out.TopItems)

	_, err = srv.GetDashboard(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestStatsService_HistogramCapAndTopFive(t *testing.T) {
	env := newTestEnv(t)
	srv := env.statsService()
	ctx := context.Background()
	owner := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)

	// Eight months of purchases; only the newest six survive.
	for i := 0; i < 8; i++ {
		createItem(t, env, owner, "Item", 10000, fixedNow().AddDate(0, -i, 0))
	}

	out, err := srv.GetDashboard(ctx, owner.ID)
	require.NoError(t, err)

	require.Len(t, out.MonthlySpend, 6)
	assert.Equal(t, "2025-06", out.MonthlySpend[0].Month)
	assert.Equal(t, "2025-01", out.MonthlySpend[5].Month)

	// Eight items tie on utilization; the top five keep insertion order.
	require.Len(t, out.TopItems, 5)

	items, err := env.items.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, items[i].ID, out.TopItems[i].Item.ID)
	}
}

func TestStatsService_DashboardIncludesOrderSpend(t *testing.T) {
	env := newTestEnv(t)
	srv := env.statsService()
	ctx := context.Background()
	buyer := createUser(t, env, "mina", entity.RoleUser, entity.TierFree)
	creator := createUser(t, env, "jae", entity.RoleCreator, entity.TierFree)

	card, err := env.outfitService().CreateOutfit(ctx, sampleOutfitInput(creator.ID))
	require.NoError(t, err)
	order, err := env.orderService().Checkout(ctx, usecase.CheckoutInput{
		BuyerUserID:  buyer.ID,
		OutfitCardID: card.ID,
	})
	require.NoError(t, err)

	out, err := srv.GetDashboard(ctx, buyer.ID)
	require.NoError(t, err)

	thisMonth := order.CreatedAt.Format("2006-01")
	require.NotEmpty(t, out.MonthlySpend)
	assert.Equal(t, thisMonth, out.MonthlySpend[0].Month)
	assert.Equal(t, order.TotalAmount, out.MonthlySpend[0].Amount)
}
