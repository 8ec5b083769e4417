package service

import (
	"context"

	"github.com/grindtime/api/models"
)

// AuthService owns the signup/signin flow and the bearer token lifecycle.
type AuthService interface {
	// SignUp normalizes the email, hashes the password, and creates the
	// account. Returns store.ErrEmailAlreadyExists (wrapped) on a duplicate.
	SignUp(ctx context.Context, email, password string) (models.User, error)

	// SignIn verifies the credentials and returns the account on success.
	// Both unknown email and wrong password yield ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed bearer token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string; every failure is normalized
	// to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// TokensEnabled reports whether this deployment issues tokens on signin.
	TokensEnabled() bool
}

// RecordService owns generic fitness-record persistence, always scoped to an
// authenticated user.
type RecordService interface {
	// SaveRecord inserts fields into table with user_id forced to userID.
	SaveRecord(ctx context.Context, userID int64, table string, fields map[string]any) (int64, error)

	// LatestRecord returns the most recent record of table owned by userID.
	LatestRecord(ctx context.Context, userID int64, table string) (models.Row, error)

	// TableCounts returns the row count of every user table; diagnostics and
	// seeding support.
	TableCounts(ctx context.Context) (map[string]int64, error)
}
