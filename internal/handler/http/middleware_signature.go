package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
)

const (
	signatureHeader = "X-Hub-Signature-256"

	// maxWebhookBody bounds how much of a notification is read for hashing.
	maxWebhookBody = 1 << 20
)

// webhookSignature checks X-Hub-Signature-256 against the raw body and
// restores the body for the next handler. Without an app secret every
// notification is accepted.
func (h *Handler) webhookSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.signer == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.webhookSignature").Msg("failed to read request body")
			utils.WriteJSON(w, models.StatusResponse{Status: app.StatusError, Detail: app.MsgInvalidDataProvided}, http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, r.Header.Get(signatureHeader)) {
			log.Warn().Str("func", "*Handler.webhookSignature").Msg("webhook signature mismatch")
			utils.WriteJSON(w, models.StatusResponse{Status: app.StatusError, Detail: app.MsgInvalidSignature}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
