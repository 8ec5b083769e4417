package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/migrations"
)

// Dialect identifies the SQL backend a [DB] is connected to. It drives
// placeholder style, schema introspection queries, and the migration set.
type Dialect string

const (
	// DialectSQLite is the embedded file-backed default backend.
	DialectSQLite Dialect = "sqlite3"
	// DialectPostgres is the networked PostgreSQL backend.
	DialectPostgres Dialect = "postgres"
)

// DB wraps *sql.DB with the dialect it was opened against.
// All repositories share a single DB; the database's own transaction and
// locking discipline is the only serialization point, no in-process locks
// are added on top.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// NewConnect opens a database connection for the given DSN.
// A "postgres://" (or "postgresql://") prefix selects the PostgreSQL driver;
// any other value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Dialect returns the SQL dialect of the underlying connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// placeholder returns the squirrel placeholder format matching the dialect.
func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}

	return sq.Question
}

// quoteIdent wraps a schema-validated identifier in double quotes.
// Identifiers must never reach this function without having been checked
// against the live schema first.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, ``) + `"`
}

// statementBuilder returns a squirrel builder preconfigured with the
// connection's placeholder format.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder())
}

func pingDatabase(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting database (ping): %w", err)
	}

	return nil
}
