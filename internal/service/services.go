package service

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type Services struct {
	RecipeService    RecipeService
	FavoritesService FavoritesService
	ProfileService   ProfileService
	SearchService    SearchService
	AppInfoService   AppInfoService

	Notifier store.Notifier
}

func NewServices(storages *store.Storages, recipeAPI adapter.RecipeAPIAdapter, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) *Services {
	recipes := NewRecipeValidationService().Wrap(NewRecipeService(storages.RecipeRepository, logger))

	return &Services{
		RecipeService:    recipes,
		FavoritesService: NewFavoritesService(storages.RecipeRepository, storages.FavoritesRepository, logger),
		ProfileService:   NewProfileService(storages.ProfileRepository, cfg.App, logger),
		SearchService:    NewSearchService(storages.RecipeRepository, recipeAPI, logger),
		AppInfoService:   NewAppInfoService(cfg.App, build),
		Notifier:         storages.Notifier,
	}
}
