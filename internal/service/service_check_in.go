package service

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/models"
	"golang.org/x/sync/errgroup"
)

// checkInConcurrency bounds parallel sends; the WhatsApp adapter throttles
// on top of it.
const checkInConcurrency = 4

type checkInService struct {
	patientRepository store.PatientRepository
	messageRepository store.MessageRepository

	messaging adapter.MessagingAdapter
	live      LiveService

	message string

	logger *logger.Logger
}

func NewCheckInService(
	patientRepository store.PatientRepository,
	messageRepository store.MessageRepository,
	messaging adapter.MessagingAdapter,
	live LiveService,
	cfg config.Workers,
	logger *logger.Logger,
) CheckInService {
	return &checkInService{
		patientRepository: patientRepository,
		messageRepository: messageRepository,
		messaging:         messaging,
		live:              live,
		message:           cfg.CheckInMessage,
		logger:            logger,
	}
}

// SendCheckIns sends the check-in text to every patient in automatic mode.
// A failed patient is counted and skipped; only listing patients fails the
// whole run.
func (s *checkInService) SendCheckIns(ctx context.Context) (models.CheckInReport, error) {
	log := logger.FromContext(ctx)

	patients, err := s.patientRepository.ListPatientsByStatus(ctx, models.StatusAutomatic)
	if err != nil {
		return models.CheckInReport{}, err
	}

	var sent, failed atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(checkInConcurrency)
	for _, patient := range patients {
		g.Go(func() error {
			if err := s.checkIn(gCtx, patient); err != nil {
				log.Warn().Err(err).Int64("patient_id", patient.ID).Msg("check-in failed")
				failed.Add(1)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	report := models.CheckInReport{Sent: int(sent.Load()), Failed: int(failed.Load())}
	log.Info().Int("sent", report.Sent).Int("failed", report.Failed).Msg("check-in finished")

	return report, nil
}

func (s *checkInService) checkIn(ctx context.Context, patient models.Patient) error {
	if err := s.messaging.SendText(ctx, patient.PhoneNumber, s.message); err != nil {
		return err
	}

	stored, err := s.messageRepository.CreateMessage(ctx, models.Message{
		PatientID: patient.ID,
		Text:      s.message,
		Sender:    models.SenderProfessional,
	})
	if err != nil {
		return err
	}
	s.live.Broadcast(patient.ID, stored)

	return nil
}
