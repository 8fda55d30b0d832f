package usecase

import (
	"context"
	"time"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput defines the data required to register a closet item by hand.
type AddItemInput struct {
	OwnerUserID   uuid.UUID
	Name          string
	Brand         string
	PurchasePrice int
	PurchaseDate  time.Time
	ImageURL      string
}

// ClosetItemOutput pairs a stored item with its derived values at read time.
type ClosetItemOutput struct {
	Item            entity.ClosetItem
	UtilizationRate int
	ResalePrice     int
}

// LogWearOutput reports the result of logging a wear event.
type LogWearOutput struct {
	Record      *entity.WearRecord
	Item        *entity.ClosetItem
	TotalPoints int // Owner's balance after crediting the wear.
}

// ImportOutput reports the result of an Instagram import run.
type ImportOutput struct {
	Imported []entity.ClosetItem
	Skipped  int // Posts already imported in an earlier run.
}

// ClosetUsecase defines the interface for closet-related business operations.
type ClosetUsecase interface {
	AddItem(ctx context.Context, input AddItemInput) (*entity.ClosetItem, error)
	GetCloset(ctx context.Context, ownerID uuid.UUID) ([]ClosetItemOutput, error)
	LogWear(ctx context.Context, userID, itemID uuid.UUID) (*LogWearOutput, error)
	ToggleVisibility(ctx context.Context, userID, itemID uuid.UUID) (*entity.ClosetItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error

	ConnectInstagram(ctx context.Context, userID uuid.UUID) error
	DisconnectInstagram(ctx context.Context, userID uuid.UUID) error
	ImportFromInstagram(ctx context.Context, userID uuid.UUID) (*ImportOutput, error)
}
