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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSendText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/123456/messages", r.URL.Path)
		assert.Equal(t, "Bearer wa-token", r.Header.Get("Authorization"))

		var body whatsAppTextMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "whatsapp", body.MessagingProduct)
		assert.Equal(t, "5511999990000", body.To)
		assert.Equal(t, "text", body.Type)
		assert.Equal(t, "Olá!", body.Text.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	a := NewWhatsAppAdapter(config.WhatsApp{Token: "wa-token", PhoneNumberID: "123456", APIURL: srv.URL}, 5*time.Second, logger.Nop())
	assert.NoError(t, a.SendText(context.Background(), "5511999990000", "Olá!"))
}

func TestWhatsAppSendText_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid parameter"}}`))
	}))
	defer srv.Close()

	a := NewWhatsAppAdapter(config.WhatsApp{Token: "wa-token", PhoneNumberID: "1", APIURL: srv.URL}, 5*time.Second, logger.Nop())
	err := a.SendText(context.Background(), "5511", "oi")
	assert.ErrorIs(t, err, ErrMessageNotDelivered)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestWhatsAppSendText_ThrottleHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	a := NewWhatsAppAdapter(config.WhatsApp{PhoneNumberID: "1", APIURL: srv.URL, RequestsPerSecond: 0.001}, time.Second, logger.Nop())
	require.NoError(t, a.SendText(context.Background(), "5511", "primeira"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := a.SendText(ctx, "5511", "segunda")
	assert.ErrorIs(t, err, ErrMessageNotDelivered)
}
