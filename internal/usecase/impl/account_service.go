// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "stylebank/internal/delivery/context"
	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/domain/repository"
	"stylebank/internal/domain/service"
	"stylebank/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// signUpPayload mirrors SignUpInput with validation tags.
type signUpPayload struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=2,max=30"`
	Password string `validate:"required,min=8"`
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account after uniqueness and validation checks.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email), slog.Any("role", input.Role))

	payload := signUpPayload{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	}
	if err := srv.validate.Struct(payload); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole.WithDetails(string(role))
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, domainerrors.ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, domainerrors.ErrUsernameTaken
		default:
			return nil, errors.Wrap(err, "failed to create user")
		}
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Any("userID", user.ID))

	return &usecase.SignUpOutput{User: user}, nil
}

// SignIn verifies credentials and issues a token pair.
func (srv *accountService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{string(user.Role)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("Sign-in completed", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetProfile returns the account record for a user.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the provided non-empty fields to the account.
func (srv *accountService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if username := strings.TrimSpace(input.Username); username != "" && username != user.Username {
		if _, err := srv.userRepo.FindByUsername(ctx, username); err == nil {
			return nil, domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check username")
		}
		user.Username = username
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}
