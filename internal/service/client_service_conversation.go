package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/cuide-me/internal/adapter"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
)

type clientConversationService struct {
	session ClientSession
	adapter adapter.ServerAdapter
	live    adapter.LiveAdapter

	logger *logger.Logger
}

func NewClientConversationService(session ClientSession, serverAdapter adapter.ServerAdapter, live adapter.LiveAdapter, logger *logger.Logger) ClientConversationService {
	return &clientConversationService{session: session, adapter: serverAdapter, live: live, logger: logger}
}

func (s *clientConversationService) History(ctx context.Context, patientID int64) ([]models.Message, error) {
	if patientID <= 0 {
		return nil, ErrNoPatientSelected
	}

	messages, err := s.adapter.ListMessages(ctx, patientID)
	if err != nil {
		return nil, mapAdapterError(ctx, s.session, err)
	}
	return messages, nil
}

// Send passes text through unmodified; only the blank check trims it.
func (s *clientConversationService) Send(ctx context.Context, patientID int64, text string) (models.Message, error) {
	if patientID <= 0 {
		return models.Message{}, ErrNoPatientSelected
	}
	if strings.TrimSpace(text) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	message, err := s.adapter.SendMessage(ctx, patientID, text)
	if err != nil {
		return models.Message{}, mapAdapterError(ctx, s.session, err)
	}
	return message, nil
}

func (s *clientConversationService) Summarize(ctx context.Context, patientID int64) (string, error) {
	if patientID <= 0 {
		return "", ErrNoPatientSelected
	}

	summary, err := s.adapter.Summarize(ctx, patientID)
	if err != nil {
		return "", mapAdapterError(ctx, s.session, err)
	}
	return summary, nil
}

func (s *clientConversationService) Subscribe(ctx context.Context, patientID int64) (<-chan models.Message, error) {
	if patientID <= 0 {
		return nil, ErrNoPatientSelected
	}

	messages, err := s.live.Subscribe(ctx, patientID)
	if err != nil {
		return nil, mapAdapterError(ctx, s.session, err)
	}

	s.logger.Debug().Int64("patient_id", patientID).Msg("live channel subscribed")
	return messages, nil
}
