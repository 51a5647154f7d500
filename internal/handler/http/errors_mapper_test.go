package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantDetail string
	}{
		{fmt.Errorf("%w: email", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{fmt.Errorf("insert: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest, app.MsgEmailAlreadyRegistered},
		{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
		{ErrInvalidPatientID, http.StatusNotFound, app.MsgPatientNotFound},
		{store.ErrPatientNotFound, http.StatusNotFound, app.MsgPatientNotFound},
		{service.ErrMessageNotDelivered, http.StatusInternalServerError, app.MsgWhatsAppSendFailed},
		{service.ErrAINotConfigured, http.StatusServiceUnavailable, app.MsgAIUnavailable},
		{service.ErrSummaryFailed, http.StatusInternalServerError, app.MsgSummaryFailed},
		{service.ErrVerificationFailed, http.StatusForbidden, app.MsgVerificationTokenMismatch},
		{fmt.Errorf("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, detail := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}
