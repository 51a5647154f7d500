package http

import (
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
)

// verifyWebhook answers the WhatsApp subscription handshake by echoing
// hub.challenge as plain text.
func (h *Handler) verifyWebhook(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	challenge, err := h.services.WebhookService.Verify(r.Context(), models.WebhookVerification{
		Mode:        query.Get("hub.mode"),
		VerifyToken: query.Get("hub.verify_token"),
		Challenge:   query.Get("hub.challenge"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

// receiveWebhook always answers 200 so the provider does not redeliver; the
// outcome is reported in {"status"}.
func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.WebhookPayload
	if err := decodeJSON(w, r, &payload); err != nil {
		log.Warn().Err(err).Msg("undecodable webhook payload")
		utils.WriteJSON(w, models.StatusResponse{Status: app.StatusError, Detail: app.MsgInvalidDataProvided}, http.StatusOK)
		return
	}

	response := models.StatusResponse{Status: app.StatusOK}
	for _, inbound := range payload.InboundMessages() {
		if err := h.services.WebhookService.HandleInbound(r.Context(), inbound); err != nil {
			log.Err(err).Str("from", inbound.From).Msg("inbound message not processed")
			response = models.StatusResponse{Status: app.StatusError, Detail: app.MsgInternalServerError}
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
