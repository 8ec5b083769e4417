package service

import (
	"context"
	"fmt"

	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/store"
	"github.com/grindtime/api/models"
)

// recordService is the concrete implementation of RecordService.
// It sits between the HTTP layer and the generic row inserter, enforcing the
// ownership rules the inserter itself does not know about.
type recordService struct {
	records store.RecordRepository
	logger  *logger.Logger
}

// NewRecordService constructs a RecordService backed by the given repository.
func NewRecordService(records store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		records: records,
		logger:  logger,
	}
}

// SaveRecord inserts fields into table on behalf of userID.
//
// The user_id field is always forced to the authenticated user, overriding
// any client-supplied value, and the users table itself is never writable
// through this path. Unknown field keys are dropped by the repository; a
// payload that supplies no real column of the table is rejected with
// store.ErrEmptyPayload before any row is written, so the forced user_id
// alone can never create a row.
func (s *recordService) SaveRecord(ctx context.Context, userID int64, table string, fields map[string]any) (int64, error) {
	log := logger.FromContext(ctx)

	if table == "" {
		return 0, ErrInvalidDataProvided
	}
	if table == (models.User{}).TableName() {
		return 0, fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}

	columns, err := s.records.Columns(ctx, table)
	if err != nil {
		log.Err(err).
			Str("table", table).
			Int64("user_id", userID).
			Msg("record insert failed")
		return 0, fmt.Errorf("record insert failed: %w", err)
	}

	// user_id is forced below, so a client-supplied one does not count as
	// payload on its own.
	hasPayload := false
	for _, col := range columns {
		if col == "user_id" {
			continue
		}
		if _, ok := fields[col]; ok {
			hasPayload = true
			break
		}
	}
	if !hasPayload {
		return 0, fmt.Errorf("%w: table %s", store.ErrEmptyPayload, table)
	}

	scoped := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		scoped[k] = v
	}
	scoped["user_id"] = userID

	id, err := s.records.Insert(ctx, table, scoped)
	if err != nil {
		log.Err(err).
			Str("table", table).
			Int64("user_id", userID).
			Msg("record insert failed")
		return 0, fmt.Errorf("record insert failed: %w", err)
	}

	return id, nil
}

// LatestRecord returns the most recent record of table owned by userID.
func (s *recordService) LatestRecord(ctx context.Context, userID int64, table string) (models.Row, error) {
	log := logger.FromContext(ctx)

	if table == "" {
		return nil, ErrInvalidDataProvided
	}
	if table == (models.User{}).TableName() {
		return nil, fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}

	row, err := s.records.LatestForUser(ctx, table, userID)
	if err != nil {
		log.Err(err).
			Str("table", table).
			Int64("user_id", userID).
			Msg("latest record lookup failed")
		return nil, fmt.Errorf("latest record lookup failed: %w", err)
	}

	return row, nil
}

// TableCounts returns the row count of every user table.
func (s *recordService) TableCounts(ctx context.Context) (map[string]int64, error) {
	tables, err := s.records.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tables failed: %w", err)
	}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		count, err := s.records.CountRows(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("counting rows of %s failed: %w", table, err)
		}
		counts[table] = count
	}

	return counts, nil
}
