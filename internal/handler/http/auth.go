package http

import (
	"net/http"

	"github.com/MKhiriev/cuide-me/internal/logger"
	"github.com/MKhiriev/cuide-me/internal/utils"
	"github.com/MKhiriev/cuide-me/models"
)

// register answers 201 with {id, email}. It does not log the professional in.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	professional, err := h.services.AuthService.Register(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", professional.ID).Msg("professional registered")
	utils.WriteJSON(w, professional, http.StatusCreated)
}

// login reads the OAuth2 password form (username, password) and answers
// with a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidBody)
		return
	}

	ctx := r.Context()
	professional, err := h.services.AuthService.Login(ctx, models.Credentials{
		Email:    r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, professional)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", professional.ID).Msg("professional logged in")
	utils.WriteJSON(w, models.TokenResponse{AccessToken: token.String(), TokenType: models.TokenTypeBearer}, http.StatusOK)
}
