package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/cuide-me/internal/config"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, content string, check func(req map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if check != nil {
			check(req)
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		}))
	}))
}

func newTestAIAdapter(url string) AIAdapter {
	return NewOpenAIAdapter(config.AI{APIKey: "sk-test", BaseURL: url + "/v1", Model: "gpt-4o-mini", Timeout: 5 * time.Second}, logger.Nop())
}

func TestAnalyze(t *testing.T) {
	content := "```json\n{\"is_alert\": true, \"auto_reply_text\": \" Sinto muito, vamos avisar a equipe. \", \"extracted_metrics\": [{\"type\": \"peso\", \"value\": 82.3}]}\n```"
	srv := newChatServer(t, content, func(req map[string]any) {
		assert.Equal(t, "gpt-4o-mini", req["model"])
		messages := req["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Contains(t, messages[1].(map[string]any)["content"], "estou com dor")
	})
	defer srv.Close()

	analysis, err := newTestAIAdapter(srv.URL).Analyze(context.Background(), "estou com dor")
	require.NoError(t, err)
	assert.True(t, analysis.IsAlert)
	assert.Equal(t, "Sinto muito, vamos avisar a equipe.", analysis.AutoReplyText)
	assert.Equal(t, []models.ExtractedMetric{{Type: "peso", Value: 82.3}}, analysis.ExtractedMetrics)
}

func TestAnalyze_InvalidJSON(t *testing.T) {
	srv := newChatServer(t, "não sei responder", nil)
	defer srv.Close()

	_, err := newTestAIAdapter(srv.URL).Analyze(context.Background(), "oi")
	assert.ErrorIs(t, err, ErrInvalidAIResponse)
}

func TestSummarize_SendsTranscript(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	srv := newChatServer(t, "  Paciente relata dor leve.  ", func(req map[string]any) {
		transcript := req["messages"].([]any)[1].(map[string]any)["content"].(string)
		assert.Contains(t, transcript, "[01/03/2026 09:30] Paciente: estou com dor")
		assert.Contains(t, transcript, "Equipe: melhorou?")
	})
	defer srv.Close()

	summary, err := newTestAIAdapter(srv.URL).Summarize(context.Background(), []models.Message{
		{Text: "estou com dor", Sender: models.SenderPatient, Timestamp: ts},
		{Text: "melhorou?", Sender: models.SenderProfessional, Timestamp: ts.Add(time.Hour)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Paciente relata dor leve.", summary)
}

func TestSummarize_EmptyChoice(t *testing.T) {
	srv := newChatServer(t, "   ", nil)
	defer srv.Close()

	_, err := newTestAIAdapter(srv.URL).Summarize(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyAIResponse)
}
