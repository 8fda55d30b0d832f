package main

import (
	"context"
	"log/slog"
	"os"

	"stylebank/config"
	"stylebank/internal/delivery"
	"stylebank/internal/delivery/http"
	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/router/handler"
	"stylebank/internal/domain/service"
	"stylebank/internal/infra/auth"
	"stylebank/internal/infra/instagram"
	logs "stylebank/internal/infra/log"
	"stylebank/internal/infra/persistence/kv"
	"stylebank/internal/infra/pubsub"
	"stylebank/internal/infra/qrcode"
	"stylebank/internal/infra/storage"
	"stylebank/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedSampleData,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			storage.NewStore,
			kv.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewUserRepository,
			kv.NewClosetItemRepository,
			kv.NewWearRecordRepository,
			kv.NewOutfitCardRepository,
			kv.NewOrderRepository,
			kv.NewSellerProfileRepository,
			kv.NewCreatorProfileRepository,
			kv.NewSeeder,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			instagram.NewStubConnector,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewClosetService,
			impl.NewOutfitService,
			impl.NewOrderService,
			impl.NewMarketService,
			impl.NewStatsService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewClosetHandler,
			handler.NewOutfitHandler,
			handler.NewOrderHandler,
			handler.NewMarketHandler,
			handler.NewStatsHandler,
			handler.NewSubscriptionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedSampleData bootstraps the marketplace fixtures when seeding is enabled.
func seedSampleData(ctx context.Context, cfg *config.Config, seeder *kv.Seeder) error {
	if cfg.Seed == nil || !cfg.Seed.Enabled {
		return nil
	}

	return seeder.EnsureSeedData(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
