package models

// Row is a single database row returned from a generic query,
// keyed by column name. Keys that do not exist in the target table's schema
// are silently dropped at the persistence layer on writes, so callers may
// safely pass a superset of fields.
type Row map[string]any
