package kv

import (
	"context"
	"time"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/google/uuid"
)

// closetItemRepository implements the domain.ClosetItemRepository interface over the kv store.
type closetItemRepository struct {
	items *collection[entity.ClosetItem]
}

// NewClosetItemRepository is the constructor for closetItemRepository.
func NewClosetItemRepository(db *DB) repository.ClosetItemRepository {
	return &closetItemRepository{
		items: newCollection[entity.ClosetItem](db, KeyClosetItems),
	}
}

// FindByID retrieves a single item by its unique ID.
func (repo *closetItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClosetItem, error) {
	item, ok, err := repo.items.first(ctx, func(i entity.ClosetItem) bool { return i.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	return item, nil
}

// ListByOwner returns the items owned by a user, in insertion order.
func (repo *closetItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.ClosetItem, error) {
	return repo.items.filter(ctx, func(i entity.ClosetItem) bool { return i.OwnerUserID == ownerID })
}

// ListPublic returns all items toggled visible to the community.
func (repo *closetItemRepository) ListPublic(ctx context.Context) ([]entity.ClosetItem, error) {
	return repo.items.filter(ctx, func(i entity.ClosetItem) bool { return i.Public })
}

// Create persists a new closet item.
func (repo *closetItemRepository) Create(ctx context.Context, item *entity.ClosetItem) error {
	return repo.items.mutate(ctx, func(items []entity.ClosetItem) ([]entity.ClosetItem, error) {
		now := time.Now().UTC()
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		if item.Source == "" {
			item.Source = entity.ItemSourceManual
		}
		item.CreatedAt = now
		item.UpdatedAt = now
		item.Version = 1

		return append(items, *item), nil
	})
}

// Update modifies an existing item.
func (repo *closetItemRepository) Update(ctx context.Context, item *entity.ClosetItem) error {
	return repo.items.mutate(ctx, func(items []entity.ClosetItem) ([]entity.ClosetItem, error) {
		for i := range items {
			if items[i].ID != item.ID {
				continue
			}

			item.CreatedAt = items[i].CreatedAt
			item.Version = items[i].Version + 1
			item.UpdatedAt = time.Now().UTC()
			items[i] = *item

			return items, nil
		}

		return nil, repository.ErrItemNotFound
	})
}

// Delete removes an item by ID.
func (repo *closetItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.items.mutate(ctx, func(items []entity.ClosetItem) ([]entity.ClosetItem, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}

		return nil, repository.ErrItemNotFound
	})
}

// wearRecordRepository implements the domain.WearRecordRepository interface.
type wearRecordRepository struct {
	records *collection[entity.WearRecord]
}

// NewWearRecordRepository is the constructor for wearRecordRepository.
func NewWearRecordRepository(db *DB) repository.WearRecordRepository {
	return &wearRecordRepository{
		records: newCollection[entity.WearRecord](db, KeyWearRecords),
	}
}

// Create persists a new wear record. Records are append-only.
func (repo *wearRecordRepository) Create(ctx context.Context, record *entity.WearRecord) error {
	return repo.records.mutate(ctx, func(records []entity.WearRecord) ([]entity.WearRecord, error) {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		if record.WornAt.IsZero() {
			record.WornAt = time.Now().UTC()
		}

		return append(records, *record), nil
	})
}

// ListByItem returns the wear records for a closet item.
func (repo *wearRecordRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]entity.WearRecord, error) {
	return repo.records.filter(ctx, func(r entity.WearRecord) bool { return r.ClosetItemID == itemID })
}

// ListByOwner returns all wear records logged by a user.
func (repo *wearRecordRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.WearRecord, error) {
	return repo.records.filter(ctx, func(r entity.WearRecord) bool { return r.OwnerUserID == ownerID })
}
