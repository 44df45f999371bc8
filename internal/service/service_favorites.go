package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type favoritesService struct {
	recipeRepository    store.RecipeRepository
	favoritesRepository store.FavoritesRepository

	logger *logger.Logger
}

func NewFavoritesService(recipeRepository store.RecipeRepository, favoritesRepository store.FavoritesRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		recipeRepository:    recipeRepository,
		favoritesRepository: favoritesRepository,
		logger:              logger,
	}
}

func (s *favoritesService) CombinedView(ctx context.Context) []models.FavoriteItem {
	recipes := s.recipeRepository.List(ctx)
	external := s.favoritesRepository.ListExternal(ctx)

	items := make([]models.FavoriteItem, 0, len(recipes)+len(external))
	for _, r := range recipes {
		if r.Favorite {
			items = append(items, models.NewLocalFavorite(r))
		}
	}
	for _, e := range external {
		items = append(items, models.NewAPIFavorite(e))
	}

	return items
}

func (s *favoritesService) RemoveCombined(ctx context.Context, item models.FavoriteItem) error {
	log := logger.FromContext(ctx)

	var err error
	switch item.Origin {
	case models.OriginLocal:
		err = s.recipeRepository.SetFavorite(ctx, item.ID, false)
	case models.OriginAPI:
		err = s.favoritesRepository.RemoveExternal(ctx, item.ID)
	default:
		log.Error().Str("origin", string(item.Origin)).Str("id", item.ID).Msg("cannot remove favorite of unknown origin")
		return fmt.Errorf("%w: %q", ErrUnknownOrigin, item.Origin)
	}

	if err != nil {
		log.Err(err).Str("origin", string(item.Origin)).Str("id", item.ID).Msg("favorite removal failed")
		return fmt.Errorf("error removing favorite: %w", err)
	}

	return nil
}

func (s *favoritesService) ToggleExternal(ctx context.Context, recipe models.ExternalRecipe) (bool, error) {
	state, err := s.favoritesRepository.ToggleFavoriteExternal(ctx, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("idMeal", recipe.ID).Msg("external favorite toggle failed")
		return false, fmt.Errorf("error toggling external favorite: %w", err)
	}

	return state, nil
}

func (s *favoritesService) IsFavoriteExternal(ctx context.Context, id string) bool {
	return s.favoritesRepository.IsFavoriteExternal(ctx, id)
}

// ToggleLocal reads the current flag and writes its negation. The two calls
// are not atomic; a concurrent toggle of the same recipe may be lost.
func (s *favoritesService) ToggleLocal(ctx context.Context, id string) (bool, error) {
	recipe, err := s.recipeRepository.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("recipe lookup failed")
		return false, fmt.Errorf("error getting recipe: %w", err)
	}

	next := !recipe.Favorite
	if err = s.recipeRepository.SetFavorite(ctx, id, next); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("setting favorite failed")
		return false, fmt.Errorf("error setting favorite: %w", err)
	}

	return next, nil
}
