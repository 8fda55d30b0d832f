package kv

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB() (*DB, storage.Store) {
	store := storage.NewMemoryStore()
	db := New(DBParams{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return db, store
}

func TestCollection_MissingKeyYieldsEmpty(t *testing.T) {
	db, _ := newTestDB()
	repo := NewClosetItemRepository(db)

	items, err := repo.ListByOwner(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCollection_MalformedBlobYieldsEmpty(t *testing.T) {
	db, store := newTestDB()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, KeyClosetItems, []byte("{not json")))

	repo := NewClosetItemRepository(db)
	items, err := repo.ListByOwner(ctx, uuid.New())

	require.NoError(t, err)
	assert.Empty(t, items)
}

// brokenStore fails every operation, simulating a backend outage.
type brokenStore struct{}

func (brokenStore) Read(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("backend unavailable")
}

func (brokenStore) Write(context.Context, string, []byte) error {
	return errors.New("backend unavailable")
}

func TestCollection_BackendFailureIsStorageError(t *testing.T) {
	db := New(DBParams{
		Store:  brokenStore{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	repo := NewClosetItemRepository(db)
	ctx := context.Background()

	_, err := repo.ListByOwner(ctx, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_FAILED", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())

	err = repo.Create(ctx, &entity.ClosetItem{Name: "Beige blazer", PurchasePrice: 89000})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_FAILED", appErr.ErrorCode())
}

func TestCollection_RoundTrip(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewClosetItemRepository(db)

	owner := uuid.New()
	item := &entity.ClosetItem{
		OwnerUserID:   owner,
		Name:          "Beige blazer",
		Brand:         "MANGO",
		PurchasePrice: 89000,
		PurchaseDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		ImageURL:      "https://img.example/blazer.jpg",
	}
	require.NoError(t, repo.Create(ctx, item))
	require.NotEqual(t, uuid.Nil, item.ID)

	loaded, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beige blazer", loaded.Name)
	assert.Equal(t, 89000, loaded.PurchasePrice)
	assert.True(t, loaded.PurchaseDate.Equal(item.PurchaseDate))
	assert.Equal(t, entity.ItemSourceManual, loaded.Source)
	assert.Equal(t, 1, loaded.Version)
}

func TestClosetItemRepository_UpdateBumpsVersion(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewClosetItemRepository(db)

	item := &entity.ClosetItem{OwnerUserID: uuid.New(), Name: "Denim", PurchasePrice: 129000}
	require.NoError(t, repo.Create(ctx, item))

	item.WearCount = 3
	require.NoError(t, repo.Update(ctx, item))

	loaded, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.WearCount)
	assert.Equal(t, 2, loaded.Version)
}

func TestClosetItemRepository_NotFound(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewClosetItemRepository(db)

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	err = repo.Update(ctx, &entity.ClosetItem{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestClosetItemRepository_Delete(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewClosetItemRepository(db)

	item := &entity.ClosetItem{OwnerUserID: uuid.New(), Name: "Knit", PurchasePrice: 49900}
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestUserRepository_DuplicateChecksDoNotMutate(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewUserRepository(db)

	first := &entity.User{Email: "mina@example.com", Username: "mina", Role: entity.RoleUser}
	require.NoError(t, repo.Create(ctx, first))

	dupEmail := &entity.User{Email: "MINA@example.com", Username: "other", Role: entity.RoleUser}
	err := repo.Create(ctx, dupEmail)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	dupUsername := &entity.User{Email: "other@example.com", Username: "Mina", Role: entity.RoleUser}
	err = repo.Create(ctx, dupUsername)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindByEmailCaseInsensitive(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{Email: "jae@example.com", Username: "jae", Role: entity.RoleCreator}
	require.NoError(t, repo.Create(ctx, user))

	loaded, err := repo.FindByEmail(ctx, "JAE@Example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, entity.TierFree, loaded.Subscription)
}

func TestWearRecordRepository_AppendOnly(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()
	repo := NewWearRecordRepository(db)

	itemID := uuid.New()
	owner := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.WearRecord{
			ClosetItemID: itemID,
			OwnerUserID:  owner,
			PointsEarned: 10,
		}))
	}

	records, err := repo.ListByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	byOwner, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, byOwner, 3)
}

func TestSeeder_Idempotent(t *testing.T) {
	db, _ := newTestDB()
	ctx := context.Background()

	sellers := NewSellerProfileRepository(db)
	creators := NewCreatorProfileRepository(db)
	seeder := NewSeeder(SeederParams{
		Sellers:  sellers,
		Creators: creators,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, seeder.EnsureSeedData(ctx))
	require.NoError(t, seeder.EnsureSeedData(ctx))

	sellerList, err := sellers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sellerList, 3)

	creatorList, err := creators.List(ctx)
	require.NoError(t, err)
	assert.Len(t, creatorList, 2)
}
