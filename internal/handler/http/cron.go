package http

import (
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/utils"
)

// checkIn runs the check-in job once and answers with its report.
func (h *Handler) checkIn(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.CheckInService.SendCheckIns(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}
