package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/tui"
	"github.com/MKhiriev/cuide-me/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

// NewApp opens the local session store and wires the adapters, services and
// screens of the dashboard. The session is the token source of both adapters.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	session := service.NewClientSession(storages.SessionRepository, logger)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, session, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	liveAdapter, err := adapter.NewWSLiveAdapter(cfg.Adapter, session, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create live adapter: %w", err)
	}

	services := service.NewClientServices(session, serverAdapter, liveAdapter, logger)

	return &App{
		storages: storages,
		services: services,
		tui:      tui.New(services, buildInfo, logger),
		logger:   logger,
	}, nil
}

// Run restores a saved session and shows the dashboard until the professional
// quits. A session that cannot be read is treated as logged out.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
	}()

	authenticated, err := a.services.AuthService.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("saved session could not be restored")
		authenticated = false
	}
	a.logger.Info().Bool("authenticated", authenticated).Msg("starting dashboard")

	if err = a.tui.Run(ctx, authenticated); err != nil {
		return fmt.Errorf("dashboard stopped: %w", err)
	}
	return nil
}
