package kv

import (
	"context"
	"time"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/google/uuid"
)

// outfitCardRepository implements the domain.OutfitCardRepository interface over the kv store.
type outfitCardRepository struct {
	cards *collection[entity.OutfitCard]
}

// NewOutfitCardRepository is the constructor for outfitCardRepository.
func NewOutfitCardRepository(db *DB) repository.OutfitCardRepository {
	return &outfitCardRepository{
		cards: newCollection[entity.OutfitCard](db, KeyOutfitCards),
	}
}

// FindByID retrieves a single card by its unique ID.
func (repo *outfitCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OutfitCard, error) {
	card, ok, err := repo.cards.first(ctx, func(c entity.OutfitCard) bool { return c.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrOutfitNotFound
	}

	return card, nil
}

// List returns all cards in insertion order.
func (repo *outfitCardRepository) List(ctx context.Context) ([]entity.OutfitCard, error) {
	return repo.cards.load(ctx)
}

// ListByCreator returns the cards published by a creator.
func (repo *outfitCardRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]entity.OutfitCard, error) {
	return repo.cards.filter(ctx, func(c entity.OutfitCard) bool { return c.CreatorUserID == creatorID })
}

// Create persists a new card.
func (repo *outfitCardRepository) Create(ctx context.Context, card *entity.OutfitCard) error {
	return repo.cards.mutate(ctx, func(cards []entity.OutfitCard) ([]entity.OutfitCard, error) {
		now := time.Now().UTC()
		if card.ID == uuid.Nil {
			card.ID = uuid.New()
		}
		if card.Products == nil {
			card.Products = []entity.Product{}
		}
		if card.LikedBy == nil {
			card.LikedBy = []uuid.UUID{}
		}
		if card.Comments == nil {
			card.Comments = []entity.Comment{}
		}
		card.CreatedAt = now
		card.UpdatedAt = now
		card.Version = 1

		return append(cards, *card), nil
	})
}

// Update modifies an existing card.
func (repo *outfitCardRepository) Update(ctx context.Context, card *entity.OutfitCard) error {
	return repo.cards.mutate(ctx, func(cards []entity.OutfitCard) ([]entity.OutfitCard, error) {
		for i := range cards {
			if cards[i].ID != card.ID {
				continue
			}

			card.CreatedAt = cards[i].CreatedAt
			card.Version = cards[i].Version + 1
			card.UpdatedAt = time.Now().UTC()
			cards[i] = *card

			return cards, nil
		}

		return nil, repository.ErrOutfitNotFound
	})
}

// Delete removes a card by ID.
func (repo *outfitCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.cards.mutate(ctx, func(cards []entity.OutfitCard) ([]entity.OutfitCard, error) {
		for i := range cards {
			if cards[i].ID == id {
				return append(cards[:i], cards[i+1:]...), nil
			}
		}

		return nil, repository.ErrOutfitNotFound
	})
}
