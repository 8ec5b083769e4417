package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err represents a uniqueness constraint
// violation on either supported backend.
//
// SQLite reports SQLITE_CONSTRAINT_UNIQUE through sqlite3.Error; PostgreSQL
// reports unique_violation (23505) through *pgconn.PgError. Signup relies on
// this translation instead of a pre-check, so concurrent attempts on the
// same email resolve at the database's own serialization point.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
