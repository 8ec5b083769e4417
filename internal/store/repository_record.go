package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
//
// It never trusts a table or column name from the caller: every identifier
// is checked against the live schema before any SQL is built from it, and
// all values are passed as bound parameters. Unknown field keys are dropped
// silently so callers may pass a superset of fields.
//
// The schema is introspected per call. Both backends answer introspection
// from in-memory catalogs, so there is no caching layer to invalidate.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// Insert writes the intersection of fields and the live column set of table
// as a single row and returns the generated row identifier.
//
// Keys of fields that are not columns of table are discarded without error.
// Returns [ErrNoSuchTable] when the table does not exist and
// [ErrEmptyPayload] when nothing remains to insert after filtering.
func (r *recordRepository) Insert(ctx context.Context, table string, fields map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	schemaColumns, err := r.Columns(ctx, table)
	if err != nil {
		return 0, err
	}

	// Keep schema order so generated SQL is deterministic.
	columns := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for _, col := range schemaColumns {
		if v, ok := fields[col]; ok {
			columns = append(columns, quoteIdent(col))
			values = append(values, v)
		}
	}

	if len(columns) == 0 {
		return 0, fmt.Errorf("%w: table %s", ErrEmptyPayload, table)
	}

	query, args, err := r.db.statementBuilder().
		Insert(quoteIdent(table)).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Insert").Str("table", table).Msg("failed to build insert query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "recordRepository.Insert").Str("table", table).Msg("failed to execute insert")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// LatestForUser returns the most recent row of table owned by userID,
// using descending row-identifier order as the recency criterion.
//
// Returns [ErrTableNotUserScoped] when the table has no user_id column and
// [ErrRecordNotFound] when the user owns no rows there.
func (r *recordRepository) LatestForUser(ctx context.Context, table string, userID int64) (models.Row, error) {
	log := logger.FromContext(ctx)

	columns, err := r.Columns(ctx, table)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(columns, "user_id") {
		return nil, fmt.Errorf("%w: %s", ErrTableNotUserScoped, table)
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}

	query, args, err := r.db.statementBuilder().
		Select(quoted...).
		From(quoteIdent(table)).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "recordRepository.LatestForUser").Str("table", table).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.LatestForUser").
			Str("table", table).
			Int64("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result, err := scanRows(rows, columns)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, ErrRecordNotFound
	}

	return result[0], nil
}

// Tables lists all user tables of the live schema, excluding internal
// bookkeeping tables (sqlite_*, goose_*).
func (r *recordRepository) Tables(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	listQuery := sqliteListTables
	if r.db.dialect == DialectPostgres {
		listQuery = postgresListTables
	}

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Tables").Msg("failed to list tables")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tables, nil
}

// Columns lists the ordered column names of table.
// Returns [ErrNoSuchTable] when the table is absent from the live schema.
func (r *recordRepository) Columns(ctx context.Context, table string) ([]string, error) {
	log := logger.FromContext(ctx)

	tables, err := r.Tables(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(tables, table) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchTable, table)
	}

	if r.db.dialect == DialectPostgres {
		return r.postgresColumns(ctx, table)
	}

	// The table name was just validated against sqlite_master; PRAGMA does
	// not accept bound parameters.
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s);", quoteIdent(table)))
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Columns").Str("table", table).Msg("failed to read table info")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return columns, nil
}

func (r *recordRepository) postgresColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, postgresListColumns, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return columns, nil
}

// CountRows returns the number of rows in table.
func (r *recordRepository) CountRows(ctx context.Context, table string) (int64, error) {
	tables, err := r.Tables(ctx)
	if err != nil {
		return 0, err
	}
	if !slices.Contains(tables, table) {
		return 0, fmt.Errorf("%w: %s", ErrNoSuchTable, table)
	}

	query, args, err := r.db.statementBuilder().
		Select("COUNT(*)").
		From(quoteIdent(table)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Rows returns every row of table in insertion order.
func (r *recordRepository) Rows(ctx context.Context, table string) ([]models.Row, error) {
	columns, err := r.Columns(ctx, table)
	if err != nil {
		return nil, err
	}

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}

	query, args, err := r.db.statementBuilder().
		Select(quoted...).
		From(quoteIdent(table)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanRows(rows, columns)
}

// DeleteAllUsers removes every user row. Dependent records are removed by
// the schema's ON DELETE CASCADE constraints.
func (r *recordRepository) DeleteAllUsers(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllUsers); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// scanRows materializes every remaining row of rows into column-keyed maps.
// Byte slices are converted to strings so results serialize as readable JSON.
func scanRows(rows *sql.Rows, columns []string) ([]models.Row, error) {
	var result []models.Row

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
