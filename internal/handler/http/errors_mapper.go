package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/MKhiriev/cuide-me/internal/utils"
)

type errorResponse struct {
	target error
	status int
	detail string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidPatientID, http.StatusNotFound, app.MsgPatientNotFound},
	{store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{store.ErrPatientNotFound, http.StatusNotFound, app.MsgPatientNotFound},
	{service.ErrMessageNotDelivered, http.StatusInternalServerError, app.MsgWhatsAppSendFailed},
	{service.ErrAINotConfigured, http.StatusServiceUnavailable, app.MsgAIUnavailable},
	{service.ErrSummaryFailed, http.StatusInternalServerError, app.MsgSummaryFailed},
	{service.ErrVerificationFailed, http.StatusForbidden, app.MsgVerificationTokenMismatch},
}

// responseFromError returns the status and detail written for err.
// Unknown errors are 500 with a generic detail.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the mapped {"detail"} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteDetail(w, detail, status)
}
