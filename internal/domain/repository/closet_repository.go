package repository

import (
	"context"
	"errors"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a closet item does not exist.
var ErrItemNotFound = errors.New("closet item not found")

// ClosetItemRepository defines the standard operations for closet item persistence.
type ClosetItemRepository interface {
	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClosetItem, error)

	// ListByOwner returns the items owned by a user, in insertion order.
	// An empty store yields an empty slice, never an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.ClosetItem, error)

	// ListPublic returns all items toggled visible to the community.
	ListPublic(ctx context.Context) ([]entity.ClosetItem, error)

	// Create persists a new closet item.
	Create(ctx context.Context, item *entity.ClosetItem) error

	// Update modifies an existing item.
	Update(ctx context.Context, item *entity.ClosetItem) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// WearRecordRepository defines operations for the append-only wear log.
type WearRecordRepository interface {
	// Create persists a new wear record. Records are immutable once created.
	Create(ctx context.Context, record *entity.WearRecord) error

	// ListByItem returns the wear records for a closet item.
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]entity.WearRecord, error)

	// ListByOwner returns all wear records logged by a user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.WearRecord, error)
}
