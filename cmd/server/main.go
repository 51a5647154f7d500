package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/handler"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/server"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/workers"
	"github.com/MKhiriev/cuide-me/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("cuide-me-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Bool("ai_enabled", cfg.AI.APIKey != "").Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	messaging := adapter.NewWhatsAppAdapter(cfg.WhatsApp, cfg.Server.RequestTimeout, log)

	var ai adapter.AIAdapter
	if cfg.AI.APIKey != "" {
		ai = adapter.NewOpenAIAdapter(cfg.AI, log)
	} else {
		log.Warn().Msg("AI_API_KEY is empty: summaries are disabled and messages are analysed by keywords")
	}

	services, err := service.NewServices(storages, messaging, ai, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
