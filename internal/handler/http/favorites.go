package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.services.FavoritesService.CombinedView(r.Context()), http.StatusOK)
}

// removeFavorite takes a combined-view item ({"origem", "id"}) and removes
// it from the collection its origin names.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	var item models.FavoriteItem
	if err := decodeJSON(r, &item); err != nil {
		writeServiceError(w, r, err, "invalid favorite body")
		return
	}
	if strings.TrimSpace(item.ID) == "" {
		writeServiceError(w, r, ErrMissingID, "invalid favorite body")
		return
	}

	if err := h.services.FavoritesService.RemoveCombined(r.Context(), item); err != nil {
		writeServiceError(w, r, err, "favorite removal failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toggleExternalFavorite takes a TheMealDB meal document as body and stores
// it verbatim or removes it.
func (h *Handler) toggleExternalFavorite(w http.ResponseWriter, r *http.Request) {
	var recipe models.ExternalRecipe
	if err := decodeJSON(r, &recipe); err != nil {
		writeServiceError(w, r, err, "invalid external recipe body")
		return
	}
	if strings.TrimSpace(recipe.ID) == "" {
		writeServiceError(w, r, ErrMissingID, "external recipe without idMeal")
		return
	}

	state, err := h.services.FavoritesService.ToggleExternal(r.Context(), recipe)
	if err != nil {
		writeServiceError(w, r, err, "external favorite toggle failed")
		return
	}

	_, _ = utils.WriteJSON(w, favoriteFlag{Favorite: state}, http.StatusOK)
}

func (h *Handler) isExternalFavorite(w http.ResponseWriter, r *http.Request) {
	state := h.services.FavoritesService.IsFavoriteExternal(r.Context(), chi.URLParam(r, "id"))
	_, _ = utils.WriteJSON(w, favoriteFlag{Favorite: state}, http.StatusOK)
}
