// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stylebank/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string
	Username string
	Password string
	Role     entity.Role
}

// SignInInput defines the data required to log in.
type SignInInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable profile fields. Empty fields are
// left unchanged.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Username  string
	AvatarURL string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account.
type SignUpOutput struct {
	User *entity.User
}

// SignInOutput returns the generated tokens after a successful login.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
}
