package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// favoriteFlag is the body of favorite state requests and responses.
type favoriteFlag struct {
	Favorite bool `json:"favorito"`
}

// listRecipes returns every recipe, or only those whose title matches the
// "q" query parameter when it is present.
func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var recipes []models.Recipe
	if r.URL.Query().Has("q") {
		recipes = h.services.RecipeService.Search(ctx, r.URL.Query().Get("q"))
	} else {
		recipes = h.services.RecipeService.List(ctx)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	_, _ = utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		writeServiceError(w, r, err, "invalid recipe body")
		return
	}

	created, err := h.services.RecipeService.Create(r.Context(), recipe)
	if err != nil {
		writeServiceError(w, r, err, "recipe creation failed")
		return
	}

	w.Header().Set("Location", "/api/recipes/"+created.ID)
	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.services.RecipeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "reading recipe failed")
		return
	}

	_, _ = utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe
	if err := decodeJSON(r, &recipe); err != nil {
		writeServiceError(w, r, err, "invalid recipe body")
		return
	}

	updated, err := h.services.RecipeService.Update(r.Context(), chi.URLParam(r, "id"), recipe)
	if err != nil {
		writeServiceError(w, r, err, "recipe update failed")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	if err := h.services.RecipeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "recipe deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setRecipeFavorite(w http.ResponseWriter, r *http.Request) {
	var flag favoriteFlag
	if err := decodeJSON(r, &flag); err != nil {
		writeServiceError(w, r, err, "invalid favorite body")
		return
	}

	if err := h.services.RecipeService.SetFavorite(r.Context(), chi.URLParam(r, "id"), flag.Favorite); err != nil {
		writeServiceError(w, r, err, "setting favorite failed")
		return
	}

	_, _ = utils.WriteJSON(w, flag, http.StatusOK)
}
