package store

import (
	"github.com/grindtime/api/internal/logger"
)

// Storages bundles all repositories sharing one database connection.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
}

// NewStorages wires every repository to the given connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		RecordRepository: NewRecordRepository(db, logger),
	}
}
