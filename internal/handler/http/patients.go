package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
)

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.services.PatientService.ListPatients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.PatientUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	patient, err := h.services.PatientService.UpdatePatient(r.Context(), patientID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) assumeControl(w http.ResponseWriter, r *http.Request) {
	h.setControl(w, r, h.services.PatientService.AssumeControl)
}

func (h *Handler) releaseControl(w http.ResponseWriter, r *http.Request) {
	h.setControl(w, r, h.services.PatientService.ReleaseControl)
}

func (h *Handler) setControl(w http.ResponseWriter, r *http.Request, set func(ctx context.Context, patientID int64) (models.Patient, error)) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	patient, err := set(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) listMetrics(w http.ResponseWriter, r *http.Request) {
	patientID, err := patientIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics, err := h.services.PatientService.ListMetrics(r.Context(), patientID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, metrics, http.StatusOK)
}
