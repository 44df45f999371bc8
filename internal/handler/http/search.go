package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type searchResponse struct {
	Local       []models.Recipe         `json:"local"`
	Remote      []models.ExternalRecipe `json:"remote"`
	LocalError  string                  `json:"localError,omitempty"`
	RemoteError string                  `json:"remoteError,omitempty"`
}

// search always answers 200: a failed branch is reported in its error field
// next to the results of the other one.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	result := h.services.SearchService.Search(r.Context(), r.URL.Query().Get("q"))

	resp := searchResponse{Local: result.Local, Remote: result.Remote}
	if resp.Local == nil {
		resp.Local = []models.Recipe{}
	}
	if resp.Remote == nil {
		resp.Remote = []models.ExternalRecipe{}
	}
	if result.LocalErr != nil {
		resp.LocalError = result.LocalErr.Error()
	}
	if result.RemoteErr != nil {
		resp.RemoteError = result.RemoteErr.Error()
	}

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
