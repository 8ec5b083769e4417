package service

import (
	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/store"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.Auth, logger),
		RecordService: NewRecordService(storages.RecordRepository, logger),
	}
}
