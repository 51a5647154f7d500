package service

import (
	"fmt"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/crypto"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/validators"
)

type Services struct {
	AuthService    AuthService
	PatientService PatientService
	MessageService MessageService
	LiveService    LiveService
	WebhookService WebhookService
	CheckInService CheckInService
	AppInfoService AppInfoService
}

// NewServices wires the server services. ai may be nil, which disables
// summaries and switches message analysis to keyword matching.
func NewServices(storages *store.Storages, messaging adapter.MessagingAdapter, ai adapter.AIAdapter, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	live := NewLiveService(logger)

	return &Services{
		AuthService:    NewAuthService(storages.ProfessionalRepository, crypto.NewBcryptHasher(crypto.DefaultCost), validator, cfg.App, logger),
		PatientService: NewPatientService(storages.PatientRepository, storages.MetricRepository, validator, logger),
		MessageService: NewMessageService(storages.PatientRepository, storages.MessageRepository, messaging, ai, validator, logger),
		LiveService:    live,
		WebhookService: NewWebhookService(storages, messaging, ai, live, cfg.App, logger),
		CheckInService: NewCheckInService(storages.PatientRepository, storages.MessageRepository, messaging, live, cfg.Workers, logger),
		AppInfoService: appInfoService,
	}, nil
}
