package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMessages(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	suggestion := "Beba bastante água."
	messages := &mockMessageService{
		listMessagesFn: func(_ context.Context, id int64) ([]models.Message, error) {
			if id == 404 {
				return nil, store.ErrPatientNotFound
			}
			return []models.Message{
				{ID: 1, PatientID: id, Text: "Estou com dor", Sender: models.SenderPatient, Timestamp: at, HasAlert: true, AISuggestion: &suggestion},
				{ID: 2, PatientID: id, Text: "Já vamos ajudar", Sender: models.SenderProfessional, Timestamp: at.Add(time.Minute)},
			}, nil
		},
	}
	router := newTestHandler(t, &service.Services{MessageService: messages}).Init()

	t.Run("history", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authorized(http.MethodGet, "/api/messages/2", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "patient", got[0]["sender"])
		assert.Equal(t, suggestion, got[0]["ai_suggestion"])
		assert.NotContains(t, got[0], "has_alert")
		assert.Nil(t, got[1]["ai_suggestion"])
	})

	t.Run("unknown patient", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authorized(http.MethodGet, "/api/messages/404", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSendMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		sendErr    error
		wantStatus int
		wantDetail string
	}{
		{name: "sent", body: `{"text":"Bom dia!"}`, wantStatus: http.StatusCreated},
		{name: "blank text", body: `{"text":"  "}`, sendErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantDetail: app.MsgInvalidDataProvided},
		{name: "not delivered", body: `{"text":"Oi"}`, sendErr: service.ErrMessageNotDelivered, wantStatus: http.StatusInternalServerError, wantDetail: app.MsgWhatsAppSendFailed},
		{name: "unknown patient", body: `{"text":"Oi"}`, sendErr: store.ErrPatientNotFound, wantStatus: http.StatusNotFound, wantDetail: app.MsgPatientNotFound},
		{name: "not json", body: `text=Oi`, wantStatus: http.StatusBadRequest, wantDetail: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := &mockMessageService{
				sendMessageFn: func(_ context.Context, id int64, text string) (models.Message, error) {
					if tt.sendErr != nil {
						return models.Message{}, tt.sendErr
					}
					return models.Message{ID: 10, PatientID: id, Text: text, Sender: models.SenderProfessional}, nil
				},
			}
			router := newTestHandler(t, &service.Services{MessageService: messages}).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authorized(http.MethodPost, "/api/messages/send/4", tt.body))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
				return
			}
			var got models.Message
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Bom dia!", got.Text)
			assert.Equal(t, models.SenderProfessional, got.Sender)
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name        string
		summary     string
		err         error
		wantStatus  int
		wantSummary string
		wantDetail  string
	}{
		{name: "summary", summary: "Paciente relata dor leve.", wantStatus: http.StatusOK, wantSummary: "Paciente relata dor leve."},
		{name: "no ai", err: service.ErrAINotConfigured, wantStatus: http.StatusServiceUnavailable, wantDetail: app.MsgAIUnavailable},
		{name: "provider failure", err: service.ErrSummaryFailed, wantStatus: http.StatusInternalServerError, wantDetail: app.MsgSummaryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := &mockMessageService{
				summarizeFn: func(context.Context, int64) (string, error) {
					return tt.summary, tt.err
				},
			}
			router := newTestHandler(t, &service.Services{MessageService: messages}).Init()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authorized(http.MethodPost, "/api/messages/1/summarize", ""))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
				return
			}
			var got models.SummaryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantSummary, got.Summary)
		})
	}
}
