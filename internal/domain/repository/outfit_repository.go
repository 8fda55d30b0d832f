package repository

import (
	"context"
	"errors"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOutfitNotFound is returned when an outfit card does not exist.
var ErrOutfitNotFound = errors.New("outfit card not found")

// OutfitCardRepository defines the standard operations for outfit card persistence.
// Comments and the liker set are embedded documents, so mutating them goes
// through Update on the whole card.
type OutfitCardRepository interface {
	// FindByID retrieves a single card by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.OutfitCard, error)

	// List returns all cards in insertion order.
	List(ctx context.Context) ([]entity.OutfitCard, error)

	// ListByCreator returns the cards published by a creator.
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]entity.OutfitCard, error)

	// Create persists a new card.
	Create(ctx context.Context, card *entity.OutfitCard) error

	// Update modifies an existing card.
	Update(ctx context.Context, card *entity.OutfitCard) error

	// Delete removes a card by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
