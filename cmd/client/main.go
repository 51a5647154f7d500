package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/cuide-me/internal/client"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("cuide-me-dashboard").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("cuide-me-dashboard", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init dashboard error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dashboard run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
