package valuation

import (
	"testing"
	"time"

	"stylebank/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) time.Time {
	return now.AddDate(0, 0, -d)
}

func TestUtilizationRate(t *testing.T) {
	tests := []struct {
		name      string
		purchased time.Time
		wearCount int
		want      int
	}{
		{name: "90 days 15 wears", purchased: daysAgo(90), wearCount: 15, want: 50},
		{name: "fresh purchase floors months to one", purchased: daysAgo(0), wearCount: 3, want: 30},
		{name: "three months six wears", purchased: daysAgo(90), wearCount: 6, want: 20},
		{name: "heavy wear clamps at 100", purchased: daysAgo(30), wearCount: 40, want: 100},
		{name: "never worn", purchased: daysAgo(365), wearCount: 0, want: 0},
		{name: "future purchase date", purchased: now.AddDate(0, 1, 0), wearCount: 5, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UtilizationRate(tt.purchased, tt.wearCount, now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestDepreciationRate_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		purchased time.Time
		wearCount int
		want      int
	}{
		{name: "90 days 15 wears", purchased: daysAgo(90), wearCount: 15, want: 17},
		{name: "new unworn item floors at base", purchased: daysAgo(0), wearCount: 0, want: 50},
		{name: "heavily worn clamps at floor", purchased: daysAgo(600), wearCount: 30, want: 10},
		{name: "long ownership alone clamps at floor", purchased: daysAgo(30 * 100), wearCount: 0, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DepreciationRate(tt.purchased, tt.wearCount, now)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 10)
			assert.LessOrEqual(t, got, 90)
		})
	}
}

func TestResalePrice(t *testing.T) {
	// purchasePrice=159000, 90 days ago, 15 wears:
	// depreciation = clamp(50-30-3, 10, 90) = 17 -> 159000 * 0.83 = 131970.
	got := ResalePrice(159000, daysAgo(90), 15, now)
	assert.Equal(t, 131970, got)
}

func TestResalePrice_NeverExceedsPurchasePrice(t *testing.T) {
	for wear := 0; wear <= 50; wear += 5 {
		for days := 0; days <= 720; days += 90 {
			price := ResalePrice(100000, daysAgo(days), wear, now)
			assert.LessOrEqual(t, price, 90000, "wear=%d days=%d", wear, days)
			assert.GreaterOrEqual(t, price, 10000, "wear=%d days=%d", wear, days)
		}
	}
}

func TestOutfitRevenue(t *testing.T) {
	card := &entity.OutfitCard{
		Likes: 42,
		Comments: []entity.Comment{
			{Content: "great look"},
			{Content: "where is the jacket from?"},
		},
		Products: []entity.Product{
			{Price: 89000, ExternalLink: "https://shop.example/p1"},
			{Price: 29900, ExternalLink: "https://shop.example/p2"},
			{Price: 129000},
		},
	}

	tests := []struct {
		name     string
		strategy RevenueStrategy
		want     int
	}{
		{name: "engagement", strategy: RevenueEngagement, want: 42*10 + 2*50 + 3*1000},
		{name: "weighted counts only linked products", strategy: RevenueWeighted, want: 42*50 + 2*100 + 2*500},
		{name: "commission on product prices", strategy: RevenueCommission, want: 24790},
		{name: "unknown strategy falls back to commission", strategy: RevenueStrategy("bogus"), want: 24790},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutfitRevenue(card, tt.strategy))
		})
	}
}

func TestWearPoints(t *testing.T) {
	assert.Equal(t, 0, WearPoints(0))
	assert.Equal(t, 150, WearPoints(15))
}

func TestRevenueStrategyIsValid(t *testing.T) {
	assert.True(t, RevenueCommission.IsValid())
	assert.True(t, RevenueEngagement.IsValid())
	assert.True(t, RevenueWeighted.IsValid())
	assert.False(t, RevenueStrategy("per-view").IsValid())
}
