package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/store"
	"github.com/grindtime/api/internal/utils"
	"github.com/grindtime/api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the JWT
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the symmetric secret used to sign and verify JWT
	// tokens. Injected at construction; never read from a package global.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// issueTokens is false when this deployment profile runs without bearer
	// tokens; signin then returns only the user identity.
	issueTokens bool

	// bcryptCost is the bcrypt work factor; zero selects the library default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		issueTokens:    !cfg.DisableTokens,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// NormalizeEmail lowercases and trims an email address. All persistence and
// lookup paths operate on the normalized form only.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates a new user account.
//
// The email is normalized (trimmed, lowercased) before persistence and the
// password is hashed with bcrypt; the plaintext never reaches the store.
// Uniqueness is resolved by the database constraint: two concurrent signups
// for the same email both attempt the insert and the loser receives
// store.ErrEmailAlreadyExists.
//
// Returns the persisted user (with server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty after trimming.
//   - A wrapped storage error otherwise (match store.ErrEmailAlreadyExists
//     with errors.Is).
func (a *authService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// SignIn authenticates an existing user.
//
// It normalizes the email, looks the account up, and verifies the password
// against the stored bcrypt hash. An unknown email and a wrong password
// produce the same ErrInvalidCredentials result; only internal logs record
// which condition actually occurred.
func (a *authService) SignIn(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signin data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the account email as an
// auxiliary claim, and expires after tokenDuration.
//
// Returns ErrTokensDisabled when the deployment runs without tokens, or a
// wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if !a.issueTokens {
		return models.Token{}, ErrTokensDisabled
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Any validation failure (expired, wrong
// issuer, malformed, bad signature, missing subject) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers cannot distinguish the cause;
// the underlying error goes to internal diagnostics only.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// TokensEnabled reports whether signin responses carry an access token.
func (a *authService) TokensEnabled() bool {
	return a.issueTokens
}
