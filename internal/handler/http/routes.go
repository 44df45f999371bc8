package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.updateProfile)

		r.Get("/api/recipes", h.listRecipes)
		r.Post("/api/recipes", h.createRecipe)
		r.Get("/api/recipes/{id}", h.getRecipe)
		r.Put("/api/recipes/{id}", h.updateRecipe)
		r.Delete("/api/recipes/{id}", h.deleteRecipe)
		r.Put("/api/recipes/{id}/favorite", h.setRecipeFavorite)

		r.Get("/api/favorites", h.listFavorites)
		r.Delete("/api/favorites", h.removeFavorite)
		r.Post("/api/favorites/external", h.toggleExternalFavorite)
		r.Get("/api/favorites/external/{id}", h.isExternalFavorite)

		r.Get("/api/search", h.search)
		r.Get("/api/events", h.events)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
