package kv

import (
	"context"
	"time"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/google/uuid"
)

// sellerProfileRepository implements the domain.SellerProfileRepository interface.
type sellerProfileRepository struct {
	sellers *collection[entity.SellerProfile]
}

// NewSellerProfileRepository is the constructor for sellerProfileRepository.
func NewSellerProfileRepository(db *DB) repository.SellerProfileRepository {
	return &sellerProfileRepository{
		sellers: newCollection[entity.SellerProfile](db, KeySellers),
	}
}

// FindByID retrieves a seller profile by its unique ID.
func (repo *sellerProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	seller, ok, err := repo.sellers.first(ctx, func(s entity.SellerProfile) bool { return s.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrSellerNotFound
	}

	return seller, nil
}

// List returns all seller profiles in insertion order.
func (repo *sellerProfileRepository) List(ctx context.Context) ([]entity.SellerProfile, error) {
	return repo.sellers.load(ctx)
}

// Create persists a new seller profile.
func (repo *sellerProfileRepository) Create(ctx context.Context, profile *entity.SellerProfile) error {
	return repo.sellers.mutate(ctx, func(sellers []entity.SellerProfile) ([]entity.SellerProfile, error) {
		now := time.Now().UTC()
		if profile.ID == uuid.Nil {
			profile.ID = uuid.New()
		}
		profile.CreatedAt = now
		profile.UpdatedAt = now
		profile.Version = 1

		return append(sellers, *profile), nil
	})
}

// Update modifies an existing seller profile.
func (repo *sellerProfileRepository) Update(ctx context.Context, profile *entity.SellerProfile) error {
	return repo.sellers.mutate(ctx, func(sellers []entity.SellerProfile) ([]entity.SellerProfile, error) {
		for i := range sellers {
			if sellers[i].ID != profile.ID {
				continue
			}

			profile.CreatedAt = sellers[i].CreatedAt
			profile.Version = sellers[i].Version + 1
			profile.UpdatedAt = time.Now().UTC()
			sellers[i] = *profile

			return sellers, nil
		}

		return nil, repository.ErrSellerNotFound
	})
}

// creatorProfileRepository implements the domain.CreatorProfileRepository interface.
type creatorProfileRepository struct {
	creators *collection[entity.CreatorProfile]
}

// NewCreatorProfileRepository is the constructor for creatorProfileRepository.
func NewCreatorProfileRepository(db *DB) repository.CreatorProfileRepository {
	return &creatorProfileRepository{
		creators: newCollection[entity.CreatorProfile](db, KeyCreators),
	}
}

// FindByID retrieves a creator profile by its unique ID.
func (repo *creatorProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreatorProfile, error) {
	creator, ok, err := repo.creators.first(ctx, func(c entity.CreatorProfile) bool { return c.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrCreatorNotFound
	}

	return creator, nil
}

// FindByUserID retrieves the creator profile owned by a user account.
func (repo *creatorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.CreatorProfile, error) {
	creator, ok, err := repo.creators.first(ctx, func(c entity.CreatorProfile) bool { return c.UserID == userID })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrCreatorNotFound
	}

	return creator, nil
}

// List returns all creator profiles in insertion order.
func (repo *creatorProfileRepository) List(ctx context.Context) ([]entity.CreatorProfile, error) {
	return repo.creators.load(ctx)
}

// Create persists a new creator profile.
func (repo *creatorProfileRepository) Create(ctx context.Context, profile *entity.CreatorProfile) error {
	return repo.creators.mutate(ctx, func(creators []entity.CreatorProfile) ([]entity.CreatorProfile, error) {
		now := time.Now().UTC()
		if profile.ID == uuid.Nil {
			profile.ID = uuid.New()
		}
		if profile.FollowerIDs == nil {
			profile.FollowerIDs = []uuid.UUID{}
		}
		profile.CreatedAt = now
		profile.UpdatedAt = now
		profile.Version = 1

		return append(creators, *profile), nil
	})
}

// Update modifies an existing creator profile.
func (repo *creatorProfileRepository) Update(ctx context.Context, profile *entity.CreatorProfile) error {
	return repo.creators.mutate(ctx, func(creators []entity.CreatorProfile) ([]entity.CreatorProfile, error) {
		for i := range creators {
			if creators[i].ID != profile.ID {
				continue
			}

			profile.CreatedAt = creators[i].CreatedAt
			profile.Version = creators[i].Version + 1
			profile.UpdatedAt = time.Now().UTC()
			creators[i] = *profile

			return creators, nil
		}

		return nil, repository.ErrCreatorNotFound
	})
}
