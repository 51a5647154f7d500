package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/service"
	"github.com/MKhiriev/cuide-me/internal/utils"
)

// tokenQueryParam carries the token for clients that cannot set headers on
// a websocket handshake.
const tokenQueryParam = "token"

// auth resolves the bearer token to a professional and stores its id in the
// request context under [utils.ProfessionalIDCtxKey].
//
// Every failure is answered with 401, "WWW-Authenticate: Bearer" and
// the same detail, so callers cannot tell a bad token from a deleted account.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without usable token")
			writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		professional, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.ProfessionalIDCtxKey, professional.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		if token := r.URL.Query().Get(tokenQueryParam); token != "" {
			return token, nil
		}
		return "", ErrEmptyAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
