package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same normalized email already exists.
	// The condition is detected from the database uniqueness constraint, never
	// by a pre-check, so concurrent signups race safely.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEmptyPayload is returned by the generic inserter when, after
	// discarding unknown columns, nothing remains to insert.
	ErrEmptyPayload = errors.New("no valid columns to insert")

	// ErrNoSuchTable is returned when the target table does not exist in the
	// live schema.
	ErrNoSuchTable = errors.New("no such table")

	// ErrTableNotUserScoped is returned when a per-user query targets a table
	// that has no user_id column.
	ErrTableNotUserScoped = errors.New("table is not scoped to a user")

	// ErrRecordNotFound is returned when a per-user recency query matches no
	// rows.
	ErrRecordNotFound = errors.New("no record was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
