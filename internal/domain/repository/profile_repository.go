package repository

import (
	"context"
	"errors"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSellerNotFound is returned when a seller profile does not exist.
var ErrSellerNotFound = errors.New("seller profile not found")

// ErrCreatorNotFound is returned when a creator profile does not exist.
var ErrCreatorNotFound = errors.New("creator profile not found")

// SellerProfileRepository defines operations for public seller cards.
type SellerProfileRepository interface {
	// FindByID retrieves a seller profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error)

	// List returns all seller profiles in insertion order.
	List(ctx context.Context) ([]entity.SellerProfile, error)

	// Create persists a new seller profile.
	Create(ctx context.Context, profile *entity.SellerProfile) error

	// Update modifies an existing seller profile.
	Update(ctx context.Context, profile *entity.SellerProfile) error
}

// CreatorProfileRepository defines operations for public creator cards.
type CreatorProfileRepository interface {
	// FindByID retrieves a creator profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreatorProfile, error)

	// FindByUserID retrieves the creator profile owned by a user account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CreatorProfile, error)

	// List returns all creator profiles in insertion order.
	List(ctx context.Context) ([]entity.CreatorProfile, error)

	// Create persists a new creator profile.
	Create(ctx context.Context, profile *entity.CreatorProfile) error

	// Update modifies an existing creator profile.
	Update(ctx context.Context, profile *entity.CreatorProfile) error
}
