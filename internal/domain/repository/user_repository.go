// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a create would violate email uniqueness.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateUsername is returned when a create would violate username uniqueness.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their public handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. It enforces email and username uniqueness
	// and leaves the collection untouched when either check fails.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// List returns all users in insertion order.
	List(ctx context.Context) ([]entity.User, error)
}
