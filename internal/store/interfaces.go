package store

import (
	"context"

	"github.com/grindtime/api/models"
)

// UserRepository is the durable credential store: a mapping from normalized
// email to password hash and identity. Uniqueness of the email is owned by
// the persistence layer, not by application logic.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns ErrEmailAlreadyExists when the
	// database uniqueness constraint fires.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by exact (already normalized) email.
	// Returns ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecordRepository is the schema-introspecting generic persistence layer for
// the fitness record tables.
type RecordRepository interface {
	// Insert writes a partial field set into the named table, silently
	// dropping keys that are not columns of the live schema, and returns the
	// generated row identifier. Returns ErrNoSuchTable or ErrEmptyPayload.
	Insert(ctx context.Context, table string, fields map[string]any) (int64, error)

	// LatestForUser returns the most recent row of table owned by userID.
	// Returns ErrRecordNotFound when the user has no rows there.
	LatestForUser(ctx context.Context, table string, userID int64) (models.Row, error)

	// Tables lists all user tables of the live schema.
	Tables(ctx context.Context) ([]string, error)

	// Columns lists the ordered column names of table.
	// Returns ErrNoSuchTable when the table does not exist.
	Columns(ctx context.Context, table string) ([]string, error)

	// CountRows returns the number of rows in table.
	CountRows(ctx context.Context, table string) (int64, error)

	// Rows returns every row of table. Intended for the seeding utility's
	// dump mode, not for request paths.
	Rows(ctx context.Context, table string) ([]models.Row, error)

	// DeleteAllUsers removes every user row; dependent records follow via
	// ON DELETE CASCADE. External maintenance operation only.
	DeleteAllUsers(ctx context.Context) error
}
