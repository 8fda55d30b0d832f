package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylebank/config"
	"stylebank/internal/delivery/http/validator"
	"stylebank/internal/infra/auth"
	"stylebank/internal/infra/persistence/kv"
	"stylebank/internal/infra/storage"
	"stylebank/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/labstack/echo/v4"
)

func newAccountTestHandler(t *testing.T) *AccountHandler {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret"
	cfg.SecretKey.Refresh = "test_refresh_secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := kv.New(kv.DBParams{Store: storage.NewMemoryStore(), Logger: logger})

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	uc := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo:     kv.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})

	return NewAccountHandler(uc, logger)
}

func TestAccountHandler_SignUp_Integration(t *testing.T) {
	handler := newAccountTestHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	body := `{"email":"mina@example.com","username":"mina","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SignUp(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"username":"mina"`)
	assert.Contains(t, responseBody, `"subscription":"free"`)

	// The stored hash must never appear in an API response.
	assert.NotContains(t, responseBody, "passwordHash")
}

func TestAccountHandler_SignUp_RejectsInvalidPayload(t *testing.T) {
	handler := newAccountTestHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	body := `{"email":"not-an-email","username":"mina","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SignUp(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_SignIn_Integration(t *testing.T) {
	handler := newAccountTestHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	signUpBody := `{"email":"mina@example.com","username":"mina","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(signUpBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.SignUp(e.NewContext(req, rec)))

	signInBody := `{"email":"mina@example.com","password":"secret-password"}`
	req = httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(signInBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()

	err := handler.SignIn(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "accessToken")
	assert.Contains(t, responseBody, "refreshToken")
	assert.NotContains(t, responseBody, "passwordHash")
}
