package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
	"github.com/grindtime/api/internal/store"
	"github.com/grindtime/api/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, email, password string) (models.User, error)
	signInFn      func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	tokensOff     bool
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	return m.signUpFn(ctx, email, password)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	return m.signInFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) TokensEnabled() bool {
	return !m.tokensOff
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{AuthService: auth}
	return NewHandler(svcs, nil, nil, logger.Nop())
}

// credentialsBody serialises a signup/signin request body.
func credentialsBody(t *testing.T, email, password string) string {
	t.Helper()
	b, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	return string(b)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// ─────────────────────────────────────────────
// health
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.HealthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, email, password string) (models.User, error) {
			require.Equal(t, "alice@example.com", email)
			require.Equal(t, "s3cret", password)
			return models.User{UserID: 12, Email: email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(credentialsBody(t, "alice@example.com", "s3cret")))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[models.SignupResponse](t, rec)
	assert.Equal(t, "User created", body.Message)
	assert.Equal(t, int64(12), body.UserID)
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(credentialsBody(t, "", "")))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, "email and password are required", body.Error)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(credentialsBody(t, "alice@example.com", "pw")))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, "email already registered", body.Error)
}

func TestSignup_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		signUpFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(credentialsBody(t, "alice@example.com", "pw")))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details never leak to the client.
	assert.NotContains(t, rec.Body.String(), "db down")
}

// ─────────────────────────────────────────────
// signin
// ─────────────────────────────────────────────

func TestSignin_SuccessWithToken(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			require.Equal(t, int64(7), user.UserID)
			return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(credentialsBody(t, "alice@example.com", "s3cret")))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.SigninResponse](t, rec)
	assert.Equal(t, "Signed in", body.Message)
	assert.Equal(t, int64(7), body.UserID)
	assert.Equal(t, "signed.jwt.token", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
}

// TestSignin_TokensDisabled verifies the session-less profile: signin
// succeeds but the response carries no access token.
func TestSignin_TokensDisabled(t *testing.T) {
	auth := &mockAuthService{
		tokensOff: true,
		signInFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			t.Fatal("CreateToken must not be called when tokens are disabled")
			return models.Token{}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(credentialsBody(t, "alice@example.com", "s3cret")))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "access_token")
	assert.NotContains(t, rec.Body.String(), "token_type")
}

// TestSignin_InvalidCredentials verifies that the rejection does not say
// whether the email or the password was wrong.
func TestSignin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(credentialsBody(t, "alice@example.com", "wrong")))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, "invalid email or password", body.Error)
}

func TestSignin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/signin", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		signInFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(credentialsBody(t, "alice@example.com", "s3cret")))
	rec := httptest.NewRecorder()

	h.signin(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
