package main

import (
	"context"
	"fmt"

	"github.com/grindtime/api/internal/adapter"
	"github.com/grindtime/api/internal/config"
	"github.com/grindtime/api/internal/handler"
	"github.com/grindtime/api/internal/logger"
	"github.com/grindtime/api/internal/server"
	"github.com/grindtime/api/internal/service"
	"github.com/grindtime/api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("grindtime-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	foodSearcher := adapter.NewUSDAFoodSearcher(cfg.Search, log)
	videoSearcher := adapter.NewYouTubeVideoSearcher(cfg.Search, log)

	handlers := handler.NewHandlers(services, foodSearcher, videoSearcher, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
