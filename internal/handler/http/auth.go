package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form models.SignUp
	if err := decodeJSON(r, &form); err != nil {
		writeServiceError(w, r, err, "invalid sign up body")
		return
	}

	profile, err := h.services.ProfileService.RegisterCredentials(ctx, form)
	if err != nil {
		writeServiceError(w, r, err, "registration failed")
		return
	}

	h.writeSession(w, r, profile, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err, "invalid login body")
		return
	}

	profile, err := h.services.ProfileService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", profile.UserID).Msg("user successfully logged in")

	h.writeSession(w, r, profile, http.StatusOK)
}

// writeSession issues a token for profile, sends it in the Authorization
// header and the profile as body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, profile models.Profile, status int) {
	token, err := h.services.ProfileService.CreateToken(r.Context(), profile)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		utils.WriteError(w, app.MsgTokenCreationFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, profile, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProfileService.ClearProfile(r.Context()); err != nil {
		writeServiceError(w, r, err, "logout failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
