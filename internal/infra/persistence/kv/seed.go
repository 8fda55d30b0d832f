package kv

import (
	"context"
	"log/slog"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Seeder populates empty collections with sample marketplace data. The
// public seller and creator stats are precomputed fixtures, not rollups of
// the order book; runtime code only mutates follower-style counters.
type Seeder struct {
	sellers  repository.SellerProfileRepository
	creators repository.CreatorProfileRepository
	logger   *slog.Logger
}

// SeederParams holds dependencies for the Seeder, injected by Fx.
type SeederParams struct {
	fx.In

	Sellers  repository.SellerProfileRepository
	Creators repository.CreatorProfileRepository
	Logger   *slog.Logger
}

// NewSeeder is the constructor for Seeder.
func NewSeeder(params SeederParams) *Seeder {
	return &Seeder{
		sellers:  params.Sellers,
		creators: params.Creators,
		logger:   params.Logger,
	}
}

// EnsureSeedData populates each empty collection with fixtures. It only
// writes when a collection is empty, so it is safe to call on every start.
func (s *Seeder) EnsureSeedData(ctx context.Context) error {
	if err := s.ensureSellers(ctx); err != nil {
		return err
	}

	return s.ensureCreators(ctx)
}

func (s *Seeder) ensureSellers(ctx context.Context) error {
	existing, err := s.sellers.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list sellers before seeding")
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding sample sellers")

	for _, seller := range sampleSellers() {
		seller := seller
		if err := s.sellers.Create(ctx, &seller); err != nil {
			return errors.Wrapf(err, "failed to seed seller %s", seller.StoreName)
		}
	}

	return nil
}

func (s *Seeder) ensureCreators(ctx context.Context) error {
	existing, err := s.creators.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list creators before seeding")
	}
	if len(existing) > 0 {
		return nil
	}

	s.logger.Info("Seeding sample creators")

	for _, creator := range sampleCreators() {
		creator := creator
		if err := s.creators.Create(ctx, &creator); err != nil {
			return errors.Wrapf(err, "failed to seed creator %s", creator.DisplayName)
		}
	}

	return nil
}

func sampleSellers() []entity.SellerProfile {
	return []entity.SellerProfile{
		{
			StoreName:    "TrendyShop",
			ProductCount: 128,
			AveragePrice: 19900,
			Rating:       4.8,
			ReviewCount:  342,
			TotalSales:   1240,
		},
		{
			StoreName:    "LuxuryStyle",
			ProductCount: 54,
			AveragePrice: 45000,
			Rating:       4.9,
			ReviewCount:  156,
			TotalSales:   680,
		},
		{
			StoreName:    "StreetWear",
			ProductCount: 203,
			AveragePrice: 28000,
			Rating:       4.7,
			ReviewCount:  523,
			TotalSales:   1890,
		},
	}
}

func sampleCreators() []entity.CreatorProfile {
	return []entity.CreatorProfile{
		{
			DisplayName:  "daily.fit",
			Bio:          "One outfit a day, every day",
			TotalLikes:   12840,
			TotalRevenue: 1284000,
		},
		{
			DisplayName:  "minimal.wardrobe",
			Bio:          "Thirty items, endless looks",
			TotalLikes:   8420,
			TotalRevenue: 603000,
		},
	}
}
