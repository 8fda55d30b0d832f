// Package valuation holds the pure derived-value formulas of the domain:
// utilization rate, resale pricing, outfit revenue estimation and point
// accrual. Every function takes the reference time as an argument so the
// results are deterministic and testable.
package valuation

import (
	"math"
	"time"

	"stylebank/internal/domain/entity"
)

const (
	// PointsPerWear is credited to the item owner for each wear record.
	PointsPerWear = 10
	// PointsPerLike is transferred to an outfit's creator when another user
	// likes the card, and debited symmetrically on unlike.
	PointsPerLike = 10

	// commissionRate is the affiliate cut applied to linked product prices.
	commissionRate = 0.10

	daysPerMonth = 30
)

// RevenueStrategy selects one of the competing outfit revenue formulas.
type RevenueStrategy string

const (
	// RevenueEngagement prices raw engagement: likes*10 + comments*50 + products*1000.
	RevenueEngagement RevenueStrategy = "engagement"
	// RevenueWeighted is the alternate weighting: likes*50 + comments*100 + validLinks*500.
	RevenueWeighted RevenueStrategy = "weighted"
	// RevenueCommission estimates a 10% affiliate commission on linked
	// product prices. This is the canonical default: it ties the estimate to
	// transactable value instead of per-like pricing.
	RevenueCommission RevenueStrategy = "commission"
)

// IsValid checks if the RevenueStrategy is a known value.
func (s RevenueStrategy) IsValid() bool {
	switch s {
	case RevenueEngagement, RevenueWeighted, RevenueCommission:
		return true
	default:
		return false
	}
}

// monthsElapsed is the whole number of 30-day months between purchase and now.
// Negative spans (purchase date in the future) count as zero.
func monthsElapsed(purchaseDate, now time.Time) int {
	days := int(now.Sub(purchaseDate).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days / daysPerMonth
}

// UtilizationRate scores 0..100 how often an item is worn relative to how
// long it has been owned: (wearCount / monthsElapsed) * 10, with the month
// count floored to 1 so a fresh purchase never divides by zero.
func UtilizationRate(purchaseDate time.Time, wearCount int, now time.Time) int {
	months := monthsElapsed(purchaseDate, now)
	if months < 1 {
		months = 1
	}

	rate := int(math.Round(float64(wearCount) / float64(months) * 10))
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}

	return rate
}

// DepreciationRate is the percentage knocked off the purchase price:
// a 50% base, plus 2% per wear and 1% per elapsed month, clamped to
// [10, 90] so the resale estimate stays inside a sane band.
func DepreciationRate(purchaseDate time.Time, wearCount int, now time.Time) int {
	rate := 50 - wearCount*2 - monthsElapsed(purchaseDate, now)
	if rate < 10 {
		return 10
	}
	if rate > 90 {
		return 90
	}

	return rate
}

// ResalePrice estimates the current resale value of an item:
// purchasePrice * (1 - depreciation/100). Because depreciation is at least
// 10%, the result never exceeds 90% of the purchase price.
func ResalePrice(purchasePrice int, purchaseDate time.Time, wearCount int, now time.Time) int {
	dep := DepreciationRate(purchaseDate, wearCount, now)

	return int(math.Round(float64(purchasePrice) * (1 - float64(dep)/100)))
}

// OutfitRevenue estimates the monthly revenue of an outfit card under the
// given strategy. Unknown strategies fall back to the commission formula.
func OutfitRevenue(card *entity.OutfitCard, strategy RevenueStrategy) int {
	switch strategy {
	case RevenueEngagement:
		return card.Likes*10 + len(card.Comments)*50 + len(card.Products)*1000
	case RevenueWeighted:
		linked := 0
		for _, p := range card.Products {
			if p.ExternalLink != "" {
				linked++
			}
		}

		return card.Likes*50 + len(card.Comments)*100 + linked*500
	default:
		total := 0
		for _, p := range card.Products {
			total += p.Price
		}

		return int(math.Round(float64(total) * commissionRate))
	}
}

// WearPoints is the total points earned over a number of wear events.
func WearPoints(wearCount int) int {
	return wearCount * PointsPerWear
}
