package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/app"
	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
)

const cronSecretHeader = "X-Cron-Secret"

// cronAuth guards scheduler endpoints. An empty configured secret disables
// them entirely.
func (h *Handler) cronAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(cronSecretHeader)
		if h.cronSecret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.cronSecret)) != 1 {
			logger.FromRequest(r).Warn().Msg("cron request with invalid secret")
			utils.WriteDetail(w, app.MsgInvalidCronSecret, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
