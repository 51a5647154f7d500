package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		target  string
		want    string
		wantErr error
	}{
		{name: "bearer header", header: "Bearer abc", target: "/", want: "abc"},
		{name: "lowercase scheme", header: "bearer abc", target: "/", want: "abc"},
		{name: "query token", target: "/ws/1?token=xyz", want: "xyz"},
		{name: "header wins over query", header: "Bearer abc", target: "/ws/1?token=xyz", want: "abc"},
		{name: "missing", target: "/", wantErr: ErrEmptyAuthorizationHeader},
		{name: "basic scheme", header: "Basic abc", target: "/", wantErr: ErrInvalidAuthorizationHeader},
		{name: "no token", header: "Bearer", target: "/", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := tokenFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	var gotID any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Context().Value(utils.ProfessionalIDCtxKey)
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer good-token", wantStatus: http.StatusNoContent},
		{name: "unknown token", header: "Bearer bad-token", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token good-token", wantStatus: http.StatusUnauthorized},
		{name: "no header", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = nil
			req := httptest.NewRequest(http.MethodGet, "/api/patients/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Nil(t, gotID)
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.Equal(t, app.MsgCouldNotValidateCredentials, decodeDetail(t, rec))
				return
			}
			assert.Equal(t, int64(1), gotID)
		})
	}
}
