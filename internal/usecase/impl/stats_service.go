package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	deliverycontext "stylebank/internal/delivery/context"
	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/domain/valuation"
	"stylebank/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	histogramMonths = 6
	topItemCount    = 5
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo  repository.UserRepository
	itemRepo  repository.ClosetItemRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
	now       func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	ItemRepo  repository.ClosetItemRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:  params.UserRepo,
		itemRepo:  params.ItemRepo,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboard aggregates the user's closet and spending into the home
// dashboard numbers. An empty closet yields zeros, not errors.
func (srv *statsService) GetDashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	items, err := srv.itemRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list closet items")
	}

	orders, err := srv.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	now := srv.now()
	output := &usecase.DashboardOutput{
		TotalItems:   len(items),
		TotalPoints:  user.TotalPoints,
		MonthlySpend: []usecase.MonthlySpendBucket{},
		TopItems:     []usecase.ClosetItemOutput{},
	}

	views := make([]usecase.ClosetItemOutput, 0, len(items))
	utilizationSum := 0
	for _, item := range items {
		view := usecase.ClosetItemOutput{
			Item:            item,
			UtilizationRate: valuation.UtilizationRate(item.PurchaseDate, item.WearCount, now),
			ResalePrice:     valuation.ResalePrice(item.PurchasePrice, item.PurchaseDate, item.WearCount, now),
		}
		views = append(views, view)

		output.TotalSpend += item.PurchasePrice
		output.TotalWearCount += item.WearCount
		output.TotalResaleValue += view.ResalePrice
		utilizationSum += view.UtilizationRate
	}
	if len(views) > 0 {
		output.AverageUtilization = int(math.Round(float64(utilizationSum) / float64(len(views))))
	}

	output.TopItems = topByUtilization(views)
	output.MonthlySpend = monthlySpend(views, orders)

	srv.log(ctx).Debug("Dashboard computed",
		slog.Any("userID", userID),
		slog.Int("totalItems", output.TotalItems),
	)

	return output, nil
}

// topByUtilization returns at most five items ordered by utilization
// descending. The sort is stable, so ties keep insertion order.
func topByUtilization(views []usecase.ClosetItemOutput) []usecase.ClosetItemOutput {
	top := make([]usecase.ClosetItemOutput, len(views))
	copy(top, views)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].UtilizationRate > top[j].UtilizationRate
	})

	if len(top) > topItemCount {
		top = top[:topItemCount]
	}

	return top
}

// monthlySpend buckets item purchases and order totals by year-month,
// newest first, capped at six buckets.
func monthlySpend(views []usecase.ClosetItemOutput, orders []entity.Order) []usecase.MonthlySpendBucket {
	byMonth := map[string]int{}
	for _, v := range views {
		byMonth[v.Item.PurchaseDate.Format("2006-01")] += v.Item.PurchasePrice
	}
	for _, o := range orders {
		byMonth[o.CreatedAt.Format("2006-01")] += o.TotalAmount
	}

	months := make([]string, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	if len(months) > histogramMonths {
		months = months[:histogramMonths]
	}

	buckets := make([]usecase.MonthlySpendBucket, 0, len(months))
	for _, month := range months {
		buckets = append(buckets, usecase.MonthlySpendBucket{Month: month, Amount: byMonth[month]})
	}

	return buckets
}
