package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access entry per request. Server errors are logged
// at error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(lw, r)

		log := logger.FromRequest(r)
		log.WithLevel(accessLevel(lw.status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

func accessLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}
