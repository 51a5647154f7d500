package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/validators"
	"github.com/MKhiriev/cuide-me/models"
)

type messageService struct {
	patientRepository store.PatientRepository
	messageRepository store.MessageRepository

	messaging adapter.MessagingAdapter
	// ai is nil when no provider is configured.
	ai adapter.AIAdapter

	validator validators.Validator
	logger    *logger.Logger
}

func NewMessageService(
	patientRepository store.PatientRepository,
	messageRepository store.MessageRepository,
	messaging adapter.MessagingAdapter,
	ai adapter.AIAdapter,
	validator validators.Validator,
	logger *logger.Logger,
) MessageService {
	return &messageService{
		patientRepository: patientRepository,
		messageRepository: messageRepository,
		messaging:         messaging,
		ai:                ai,
		validator:         validator,
		logger:            logger,
	}
}

// ListMessages returns the history first and clears alerts afterwards, so
// the flags present at read time are the ones the dashboard saw.
func (s *messageService) ListMessages(ctx context.Context, patientID int64) ([]models.Message, error) {
	messages, err := s.messageRepository.ListMessages(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if err = s.messageRepository.ClearAlerts(ctx, patientID); err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *messageService) SendMessage(ctx context.Context, patientID int64, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.SendMessageRequest{Text: text}); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	patient, err := s.patientRepository.GetPatient(ctx, patientID)
	if err != nil {
		return models.Message{}, err
	}

	if err = s.messaging.SendText(ctx, patient.PhoneNumber, text); err != nil {
		log.Err(err).Str("func", "*messageService.SendMessage").Int64("patient_id", patientID).Msg("delivery failed")
		return models.Message{}, fmt.Errorf("%w: %w", ErrMessageNotDelivered, err)
	}

	return s.messageRepository.CreateMessage(ctx, models.Message{
		PatientID: patientID,
		Text:      text,
		Sender:    models.SenderProfessional,
	})
}

// Summarize asks the AI provider for a summary of the whole conversation.
// An empty conversation is answered without calling the provider.
func (s *messageService) Summarize(ctx context.Context, patientID int64) (string, error) {
	if s.ai == nil {
		return "", ErrAINotConfigured
	}

	if _, err := s.patientRepository.GetPatient(ctx, patientID); err != nil {
		return "", err
	}

	messages, err := s.messageRepository.ListMessages(ctx, patientID)
	if err != nil {
		return "", err
	}
	if len(messages) == 0 {
		return app.MsgEmptyConversation, nil
	}

	summary, err := s.ai.Summarize(ctx, messages)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageService.Summarize").Int64("patient_id", patientID).Msg("summary failed")
		return "", fmt.Errorf("%w: %w", ErrSummaryFailed, err)
	}

	return strings.TrimSpace(summary), nil
}
