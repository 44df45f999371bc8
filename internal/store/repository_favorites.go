package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type favoritesRepository struct {
	mu       sync.Mutex
	kv       KeyValueStore
	notifier Notifier
	logger   *logger.Logger
}

// NewFavoritesRepository returns a [FavoritesRepository] keeping external
// favorites under [models.KeyExternalFavorites].
func NewFavoritesRepository(kv KeyValueStore, notifier Notifier, log *logger.Logger) FavoritesRepository {
	return &favoritesRepository{
		kv:       kv,
		notifier: notifier,
		logger:   log,
	}
}

func (f *favoritesRepository) IsFavoriteExternal(ctx context.Context, id string) bool {
	for _, recipe := range f.ListExternal(ctx) {
		if recipe.ID == id {
			return true
		}
	}
	return false
}

// ToggleFavoriteExternal adds recipe when no entry has its idMeal, otherwise
// removes every entry with that idMeal. It returns the new membership.
func (f *favoritesRepository) ToggleFavoriteExternal(ctx context.Context, recipe models.ExternalRecipe) (bool, error) {
	if recipe.ID == "" {
		return false, fmt.Errorf("%w: external recipe without idMeal", ErrExternalRecipeNotFound)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	favorites, err := f.load(ctx)
	if err != nil {
		return false, err
	}

	kept, removed := withoutMeal(favorites, recipe.ID)
	op := models.ChangeDeleted
	if removed == 0 {
		kept = append(kept, recipe)
		op = models.ChangeCreated
	}

	if err = f.save(ctx, kept); err != nil {
		return false, err
	}
	f.publish(op, recipe.ID)

	return removed == 0, nil
}

func (f *favoritesRepository) ListExternal(ctx context.Context) []models.ExternalRecipe {
	f.mu.Lock()
	defer f.mu.Unlock()

	favorites, err := f.load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "favoritesRepository.ListExternal").
			Msg("external favorites unreadable, returning empty list")
		return []models.ExternalRecipe{}
	}

	return favorites
}

func (f *favoritesRepository) RemoveExternal(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	favorites, err := f.load(ctx)
	if err != nil {
		return err
	}

	kept, removed := withoutMeal(favorites, id)
	if removed == 0 {
		return fmt.Errorf("%w: %s", ErrExternalRecipeNotFound, id)
	}

	if err = f.save(ctx, kept); err != nil {
		return err
	}
	f.publish(models.ChangeDeleted, id)

	return nil
}

// LegacyFavoriteTitles returns the titles stored in the legacy "favoritos"
// collection. A missing key yields no titles.
func (f *favoritesRepository) LegacyFavoriteTitles(ctx context.Context) ([]string, error) {
	var legacy []models.Recipe

	err := f.kv.Get(ctx, models.KeyLegacyFavorites, &legacy)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading legacy favorites: %w", err)
	}

	titles := make([]string, 0, len(legacy))
	for _, recipe := range legacy {
		titles = append(titles, recipe.Title)
	}

	return titles, nil
}

func (f *favoritesRepository) DropLegacy(ctx context.Context) error {
	if err := f.kv.Remove(ctx, models.KeyLegacyFavorites); err != nil {
		return fmt.Errorf("error removing legacy favorites: %w", err)
	}
	f.notifierPublish(models.KeyLegacyFavorites, models.ChangeDeleted, "")

	return nil
}

func (f *favoritesRepository) load(ctx context.Context) ([]models.ExternalRecipe, error) {
	var favorites []models.ExternalRecipe

	err := f.kv.Get(ctx, models.KeyExternalFavorites, &favorites)
	switch {
	case err == nil:
	case errors.Is(err, ErrKeyNotFound):
		return []models.ExternalRecipe{}, nil
	case errors.Is(err, ErrMalformedPayload):
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "favoritesRepository.load").
			Msg("stored external favorites are malformed, treating as empty")
		return []models.ExternalRecipe{}, nil
	default:
		return nil, fmt.Errorf("error loading external favorites: %w", err)
	}

	if favorites == nil {
		favorites = []models.ExternalRecipe{}
	}

	return favorites, nil
}

func (f *favoritesRepository) save(ctx context.Context, favorites []models.ExternalRecipe) error {
	if err := f.kv.Set(ctx, models.KeyExternalFavorites, favorites); err != nil {
		return fmt.Errorf("error saving external favorites: %w", err)
	}
	return nil
}

func (f *favoritesRepository) publish(op models.ChangeOp, id string) {
	f.notifierPublish(models.KeyExternalFavorites, op, id)
}

func (f *favoritesRepository) notifierPublish(key string, op models.ChangeOp, id string) {
	if f.notifier == nil {
		return
	}
	f.notifier.Publish(models.ChangeEvent{Key: key, Op: op, ID: id})
}

// withoutMeal returns favorites minus every entry whose idMeal is id, and the
// number of entries dropped.
func withoutMeal(favorites []models.ExternalRecipe, id string) ([]models.ExternalRecipe, int) {
	kept := make([]models.ExternalRecipe, 0, len(favorites))
	for _, recipe := range favorites {
		if recipe.ID == id {
			continue
		}
		kept = append(kept, recipe)
	}
	return kept, len(favorites) - len(kept)
}
