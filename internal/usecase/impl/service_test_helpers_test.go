package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"stylebank/config"
	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"
	"stylebank/internal/domain/service"
	"stylebank/internal/infra/auth"
	"stylebank/internal/infra/instagram"
	"stylebank/internal/infra/persistence/kv"
	"stylebank/internal/infra/qrcode"
	"stylebank/internal/infra/storage"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixedNow keeps the derived-value arithmetic in tests deterministic.
func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// capturePublisher records published events instead of sending them anywhere.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.ActivityEvent
}

func (p *capturePublisher) PublishActivityEvent(_ context.Context, event *service.ActivityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error {
	return nil
}

func (p *capturePublisher) published() []*service.ActivityEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*service.ActivityEvent, len(p.events))
	copy(out, p.events)

	return out
}

// testEnv wires the full service graph onto an in-memory store.
type testEnv struct {
	cfg       *config.Config
	users     repository.UserRepository
	items     repository.ClosetItemRepository
	wears     repository.WearRecordRepository
	outfits   repository.OutfitCardRepository
	orders    repository.OrderRepository
	sellers   repository.SellerProfileRepository
	creators  repository.CreatorProfileRepository
	connector service.InstagramConnector
	publisher *capturePublisher
	hasher    service.PasswordHasher
	tokens    service.TokenService
	qr        service.QRCodeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	store := storage.NewMemoryStore()
	db := kv.New(kv.DBParams{Store: store, Logger: discardLogger()})

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &testEnv{
		cfg:      cfg,
		users:    kv.NewUserRepository(db),
		items:    kv.NewClosetItemRepository(db),
		wears:    kv.NewWearRecordRepository(db),
		outfits:  kv.NewOutfitCardRepository(db),
		orders:   kv.NewOrderRepository(db),
		sellers:  kv.NewSellerProfileRepository(db),
		creators: kv.NewCreatorProfileRepository(db),
		connector: instagram.NewStubConnector(instagram.ConnectorParams{
			Store:  store,
			Logger: discardLogger(),
		}),
		publisher: &capturePublisher{},
		hasher:    auth.NewBcryptHasher(cfg),
		tokens:    tokens,
		qr:        qrcode.NewQRCodeService(256, "M"),
	}
}

func (env *testEnv) accountService() *accountService {
	srv, _ := NewAccountService(AccountServiceParams{
		UserRepo:     env.users,
		Hasher:       env.hasher,
		TokenService: env.tokens,
		Logger:       discardLogger(),
	}).(*accountService)

	return srv
}

func (env *testEnv) closetService() *closetService {
	srv, _ := NewClosetService(ClosetServiceParams{
		UserRepo:  env.users,
		ItemRepo:  env.items,
		WearRepo:  env.wears,
		Connector: env.connector,
		Publisher: env.publisher,
		Config:    env.cfg,
		Logger:    discardLogger(),
	}).(*closetService)
	srv.now = fixedNow

	return srv
}

func (env *testEnv) outfitService() *outfitService {
	srv, _ := NewOutfitService(OutfitServiceParams{
		UserRepo:   env.users,
		OutfitRepo: env.outfits,
		QRService:  env.qr,
		Publisher:  env.publisher,
		Config:     env.cfg,
		Logger:     discardLogger(),
	}).(*outfitService)
	srv.now = fixedNow

	return srv
}

func (env *testEnv) orderService() *orderService {
	srv, _ := NewOrderService(OrderServiceParams{
		OrderRepo:  env.orders,
		OutfitRepo: env.outfits,
		Logger:     discardLogger(),
	}).(*orderService)

	return srv
}

func (env *testEnv) marketService() *marketService {
	srv, _ := NewMarketService(MarketServiceParams{
		SellerRepo:  env.sellers,
		CreatorRepo: env.creators,
		Logger:      discardLogger(),
	}).(*marketService)

	return srv
}

func (env *testEnv) statsService() *statsService {
	srv, _ := NewStatsService(StatsServiceParams{
		UserRepo:  env.users,
		ItemRepo:  env.items,
		OrderRepo: env.orders,
		Logger:    discardLogger(),
	}).(*statsService)
	srv.now = fixedNow

	return srv
}

func (env *testEnv) subscriptionService() *subscriptionService {
	srv, _ := NewSubscriptionService(SubscriptionServiceParams{
		UserRepo: env.users,
		Logger:   discardLogger(),
	}).(*subscriptionService)

	return srv
}

// createUser inserts a user fixture directly through the repository.
func createUser(t *testing.T, env *testEnv, username string, role entity.Role, tier entity.SubscriptionTier) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "unused",
		Role:         role,
		Subscription: tier,
	}
	require.NoError(t, env.users.Create(context.Background(), user))

	return user
}

// createItem inserts a closet item fixture for an owner.
func createItem(t *testing.T, env *testEnv, owner *entity.User, name string, price int, purchased time.Time) *entity.ClosetItem {
	t.Helper()

	item := &entity.ClosetItem{
		OwnerUserID:   owner.ID,
		Name:          name,
		PurchasePrice: price,
		PurchaseDate:  purchased,
	}
	require.NoError(t, env.items.Create(context.Background(), item))

	return item
}
