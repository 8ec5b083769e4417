package http

import (
	"github.com/grindtime/api/internal/adapter"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/service"
)

type Handler struct {
	services *service.Services

	foodSearcher  adapter.FoodSearcher
	videoSearcher adapter.VideoSearcher

	logger *logger.Logger
}

func NewHandler(services *service.Services, foodSearcher adapter.FoodSearcher, videoSearcher adapter.VideoSearcher, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		foodSearcher:  foodSearcher,
		videoSearcher: videoSearcher,
		logger:        logger,
	}
}
