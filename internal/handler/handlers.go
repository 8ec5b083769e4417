package handler

import (
	"github.com/grindtime/api/internal/adapter"
	"github.com/grindtime/api/internal/handler/http"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, foodSearcher adapter.FoodSearcher, videoSearcher adapter.VideoSearcher, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, foodSearcher, videoSearcher, logger),
	}
}
