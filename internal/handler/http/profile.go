package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "reading profile failed")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := decodeJSON(r, &profile); err != nil {
		writeServiceError(w, r, err, "invalid profile body")
		return
	}

	updated, err := h.services.ProfileService.UpdateProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err, "profile update failed")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}
