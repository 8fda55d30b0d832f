package impl

import (
	"context"
	"testing"

	"stylebank/internal/domain/entity"
	domainerrors "stylebank/internal/domain/errors"
	"stylebank/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_SignUp(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()
	ctx := context.Background()

	out, err := srv.SignUp(ctx, usecase.SignUpInput{
		Email:    "Mina@Example.com",
		Username: "mina",
		Password: "correct-horse-9",
	})

	require.NoError(t, err)
	assert.Equal(t, "mina@example.com", out.User.Email)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, entity.TierFree, out.User.Subscription)
	assert.NotEqual(t, "correct-horse-9", out.User.PasswordHash)
	assert.True(t, env.hasher.Check("correct-horse-9", out.User.PasswordHash))
}

func TestAccountService_SignUp_Validation(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.SignUpInput
	}{
		{"bad email", usecase.SignUpInput{Email: "not-an-email", Username: "mina", Password: "correct-horse-9"}},
		{"short password", usecase.SignUpInput{Email: "mina@example.com", Username: "mina", Password: "short"}},
		{"missing username", usecase.SignUpInput{Email: "mina@example.com", Password: "correct-horse-9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.SignUp(ctx, tt.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}

	_, err := srv.SignUp(ctx, usecase.SignUpInput{
		Email:    "mina@example.com",
		Username: "mina",
		Password: "correct-horse-9",
		Role:     entity.Role("wizard"),
	})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_ROLE", appErr.ErrorCode())
}

func TestAccountService_SignUp_Duplicates(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()
	ctx := context.Background()

	_, err := srv.SignUp(ctx, usecase.SignUpInput{
		Email: "mina@example.com", Username: "mina", Password: "correct-horse-9",
	})
	require.NoError(t, err)

	_, err = srv.SignUp(ctx, usecase.SignUpInput{
		Email: "MINA@example.com", Username: "other", Password: "correct-horse-9",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)

	_, err = srv.SignUp(ctx, usecase.SignUpInput{
		Email: "other@example.com", Username: "Mina", Password: "correct-horse-9",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	users, err := env.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_SignIn(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()
	ctx := context.Background()

	_, err := srv.SignUp(ctx, usecase.SignUpInput{
		Email: "jae@example.com", Username: "jae", Password: "correct-horse-9", Role: entity.RoleCreator,
	})
	require.NoError(t, err)

	out, err := srv.SignIn(ctx, usecase.SignInInput{Email: "jae@example.com", Password: "correct-horse-9"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, entity.RoleCreator, out.User.Role)

	token, err := env.tokens.ValidateToken(out.AccessToken, env.cfg.SecretKey.Access)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	_, err = srv.SignIn(ctx, usecase.SignInInput{Email: "jae@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = srv.SignIn(ctx, usecase.SignInInput{Email: "ghost@example.com", Password: "correct-horse-9"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	srv := env.accountService()
	ctx := context.Background()

	first, err := srv.SignUp(ctx, usecase.SignUpInput{
		Email: "mina@example.com", Username: "mina", Password: "correct-horse-9",
	})
	require.NoError(t, err)
	_, err = srv.SignUp(ctx, usecase.SignUpInput{
		Email: "jae@example.com", Username: "jae", Password: "correct-horse-9",
	})
	require.NoError(t, err)

	updated, err := srv.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID:    first.User.ID,
		Username:  "mina2",
		AvatarURL: "https://img.example/mina.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "mina2", updated.Username)
	assert.Equal(t, "https://img.example/mina.png", updated.AvatarURL)

	_, err = srv.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: first.User.ID, Username: "jae"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}
