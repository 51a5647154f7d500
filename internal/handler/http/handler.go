package http

import (
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer is nil when no WhatsApp app secret is configured.
	signer     *utils.Signer
	cronSecret string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		cronSecret:     cfg.App.CronSecret,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.WhatsApp.AppSecret != "" {
		h.signer = utils.NewSigner(cfg.WhatsApp.AppSecret)
	}

	return h
}
