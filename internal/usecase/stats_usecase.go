package usecase

import (
	"context"

	"github.com/google/uuid"
)

// MonthlySpendBucket is one year-month bar of the spend histogram.
type MonthlySpendBucket struct {
	Month  string `json:"month"` // "2025-06"
	Amount int    `json:"amount"`
}

// DashboardOutput aggregates a user's closet and activity into the numbers
// shown on the home dashboard.
type DashboardOutput struct {
	TotalItems         int                  `json:"totalItems"`
	TotalSpend         int                  `json:"totalSpend"`
	TotalPoints        int                  `json:"totalPoints"`
	TotalWearCount     int                  `json:"totalWearCount"`
	AverageUtilization int                  `json:"averageUtilization"`
	TotalResaleValue   int                  `json:"totalResaleValue"`
	MonthlySpend       []MonthlySpendBucket `json:"monthlySpend"` // Newest first, at most 6 buckets.
	TopItems           []ClosetItemOutput   `json:"topItems"`     // Top 5 by utilization, stable on ties.
}

// StatsUsecase defines the interface for the aggregate dashboard.
type StatsUsecase interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*DashboardOutput, error)
}
