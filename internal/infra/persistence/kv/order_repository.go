package kv

import (
	"context"
	"time"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/google/uuid"
)

// orderRepository implements the domain.OrderRepository interface over the kv store.
type orderRepository struct {
	orders *collection[entity.Order]
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		orders: newCollection[entity.Order](db, KeyOrders),
	}
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok, err := repo.orders.first(ctx, func(o entity.Order) bool { return o.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return order, nil
}

// ListByBuyer returns the orders placed by a user, in insertion order.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]entity.Order, error) {
	return repo.orders.filter(ctx, func(o entity.Order) bool { return o.BuyerUserID == buyerID })
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return repo.orders.mutate(ctx, func(orders []entity.Order) ([]entity.Order, error) {
		now := time.Now().UTC()
		if order.ID == uuid.Nil {
			order.ID = uuid.New()
		}
		if order.Status == "" {
			order.Status = entity.OrderStatusPending
		}
		order.CreatedAt = now
		order.UpdatedAt = now
		order.Version = 1

		return append(orders, *order), nil
	})
}

// Update modifies an existing order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return repo.orders.mutate(ctx, func(orders []entity.Order) ([]entity.Order, error) {
		for i := range orders {
			if orders[i].ID != order.ID {
				continue
			}

			order.CreatedAt = orders[i].CreatedAt
			order.Version = orders[i].Version + 1
			order.UpdatedAt = time.Now().UTC()
			orders[i] = *order

			return orders, nil
		}

		return nil, repository.ErrOrderNotFound
	})
}
