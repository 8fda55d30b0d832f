// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"stylebank/internal/delivery/http/middleware"
	"stylebank/internal/delivery/http/response"
	"stylebank/internal/domain/entity"
	"stylebank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userView is the API shape of a user account. The password hash never
// leaves the persistence boundary.
type userView struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	TotalPoints  int       `json:"totalPoints"`
	AvatarURL    string    `json:"avatarUrl,omitempty"`
	Subscription string    `json:"subscription"`
	CreatedAt    time.Time `json:"createdAt"`
}

func presentUser(user *entity.User) userView {
	return userView{
		ID:           user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		Role:         string(user.Role),
		TotalPoints:  user.TotalPoints,
		AvatarURL:    user.AvatarURL,
		Subscription: string(user.Subscription),
		CreatedAt:    user.CreatedAt,
	}
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=2,max=30"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"`
}

// SignUp handles the account registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentUser(output.User), "Account created successfully")
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
}

// SignIn handles the login request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signInResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         presentUser(output.User),
	}, "Signed in successfully")
}

// GetProfile returns the authenticated user's account.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUser(user), "")
}

type updateProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl"`
}

// UpdateProfile applies profile changes for the authenticated user.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID:    userID,
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentUser(user), "Profile updated")
}
