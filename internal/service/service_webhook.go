package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/models"
)

const verificationModeSubscribe = "subscribe"

type webhookService struct {
	patientRepository store.PatientRepository
	messageRepository store.MessageRepository
	metricRepository  store.MetricRepository

	messaging adapter.MessagingAdapter
	// ai is nil when no provider is configured; keyword matching is used then.
	ai   adapter.AIAdapter
	live LiveService

	verifyToken string

	logger *logger.Logger
}

func NewWebhookService(
	storages *store.Storages,
	messaging adapter.MessagingAdapter,
	ai adapter.AIAdapter,
	live LiveService,
	cfg config.App,
	logger *logger.Logger,
) WebhookService {
	return &webhookService{
		patientRepository: storages.PatientRepository,
		messageRepository: storages.MessageRepository,
		metricRepository:  storages.MetricRepository,
		messaging:         messaging,
		ai:                ai,
		live:              live,
		verifyToken:       cfg.VerifyToken,
		logger:            logger,
	}
}

// Verify implements the subscription handshake: mode "subscribe" and the
// configured verify token echo the challenge back.
func (s *webhookService) Verify(ctx context.Context, verification models.WebhookVerification) (string, error) {
	if verification.Mode != verificationModeSubscribe || s.verifyToken == "" || verification.VerifyToken != s.verifyToken {
		logger.FromContext(ctx).Warn().Str("mode", verification.Mode).Msg("webhook verification rejected")
		return "", ErrVerificationFailed
	}

	return verification.Challenge, nil
}

// HandleInbound stores one patient message and reacts to it.
//
// Steps: get or create the patient (welcoming new ones), analyse the text,
// save extracted metrics, store and broadcast the message, then deliver the
// auto reply in automatic mode. In manual mode the reply is kept on the
// message as a suggestion for the professional.
func (s *webhookService) HandleInbound(ctx context.Context, inbound models.InboundMessage) error {
	log := logger.FromContext(ctx).With().Str("from", inbound.From).Logger()

	patient, created, err := s.patientRepository.GetOrCreatePatientByPhone(ctx, inbound.From)
	if err != nil {
		return fmt.Errorf("error resolving patient: %w", err)
	}
	if created {
		log.Info().Int64("patient_id", patient.ID).Msg("new patient, sending welcome message")
		if err = s.messaging.SendText(ctx, patient.PhoneNumber, app.WelcomeMessage); err != nil {
			log.Warn().Err(err).Msg("welcome message not delivered")
		}
	}

	analysis := s.analyze(ctx, inbound.Text)

	if err = s.metricRepository.SaveMetrics(ctx, patient.ID, analysis.ExtractedMetrics...); err != nil {
		log.Warn().Err(err).Msg("metrics not saved")
	}

	message := models.Message{
		PatientID: patient.ID,
		Text:      inbound.Text,
		Sender:    models.SenderPatient,
		HasAlert:  analysis.IsAlert,
	}
	reply := analysis.AutoReplyText
	if reply != "" && patient.Status == models.StatusManual {
		message.AISuggestion = &reply
	}

	stored, err := s.messageRepository.CreateMessage(ctx, message)
	if err != nil {
		return fmt.Errorf("error storing inbound message: %w", err)
	}
	s.live.Broadcast(patient.ID, stored)

	if reply != "" && patient.Status == models.StatusAutomatic {
		s.autoReply(ctx, patient, reply)
	}

	return nil
}

// autoReply delivers reply and records it in the conversation. Failures are
// logged only: the inbound message is already stored.
func (s *webhookService) autoReply(ctx context.Context, patient models.Patient, reply string) {
	log := logger.FromContext(ctx)

	if err := s.messaging.SendText(ctx, patient.PhoneNumber, reply); err != nil {
		log.Warn().Err(err).Int64("patient_id", patient.ID).Msg("auto reply not delivered")
		return
	}

	stored, err := s.messageRepository.CreateMessage(ctx, models.Message{
		PatientID: patient.ID,
		Text:      reply,
		Sender:    models.SenderProfessional,
	})
	if err != nil {
		log.Warn().Err(err).Int64("patient_id", patient.ID).Msg("auto reply not stored")
		return
	}
	s.live.Broadcast(patient.ID, stored)
}

// analyze asks the AI provider and falls back to keyword matching when it is
// absent or fails.
func (s *webhookService) analyze(ctx context.Context, text string) models.Analysis {
	if s.ai != nil {
		analysis, err := s.ai.Analyze(ctx, text)
		if err == nil {
			return analysis
		}
		logger.FromContext(ctx).Warn().Err(err).Msg("AI analysis failed, using keyword fallback")
	}

	return models.Analysis{IsAlert: containsAlertKeyword(text)}
}

func containsAlertKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range app.AlertKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
