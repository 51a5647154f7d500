package http

import (
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	messages, err := h.services.MessageService.ListMessages(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// sendMessage answers 201 with the stored record. It is not broadcast: the
// sender appends the response itself.
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SendMessageRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.MessageService.SendMessage(r.Context(), patientID, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := h.services.MessageService.Summarize(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SummaryResponse{Summary: summary}, http.StatusOK)
}
