package kv

import (
	"context"
	"strings"
	"time"

	"stylebank/internal/domain/entity"
	"stylebank/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements the domain.UserRepository interface over the kv store.
type userRepository struct {
	users *collection[entity.User]
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		users: newCollection[entity.User](db, KeyUsers),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok, err := repo.users.first(ctx, func(u entity.User) bool { return u.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// FindByEmail retrieves a single user by their email address.
// Emails compare case-insensitively.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok, err := repo.users.first(ctx, func(u entity.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// FindByUsername retrieves a single user by their public handle.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, ok, err := repo.users.first(ctx, func(u entity.User) bool {
		return strings.EqualFold(u.Username, username)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

// Create persists a new user after checking email and username uniqueness
// inside the collection's critical section. A duplicate aborts before
// anything is written, so the collection is never half-mutated.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.users.mutate(ctx, func(users []entity.User) ([]entity.User, error) {
		for _, existing := range users {
			if strings.EqualFold(existing.Email, user.Email) {
				return nil, repository.ErrDuplicateEmail
			}
			if strings.EqualFold(existing.Username, user.Username) {
				return nil, repository.ErrDuplicateUsername
			}
		}

		now := time.Now().UTC()
		if user.ID == uuid.Nil {
			user.ID = uuid.New()
		}
		if user.Subscription == "" {
			user.Subscription = entity.TierFree
		}
		user.CreatedAt = now
		user.UpdatedAt = now
		user.Version = 1

		return append(users, *user), nil
	})
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.users.mutate(ctx, func(users []entity.User) ([]entity.User, error) {
		for i := range users {
			if users[i].ID != user.ID {
				continue
			}

			user.CreatedAt = users[i].CreatedAt
			user.Version = users[i].Version + 1
			user.UpdatedAt = time.Now().UTC()
			users[i] = *user

			return users, nil
		}

		return nil, repository.ErrUserNotFound
	})
}

// List returns all users in insertion order.
func (repo *userRepository) List(ctx context.Context) ([]entity.User, error) {
	return repo.users.load(ctx)
}
