package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// LegacyMigrationWorker upgrades documents written by earlier versions:
//  1. recipes without an ID get one;
//  2. the title-keyed "favoritos" collection becomes favorito flags and is
//     removed;
//  3. a "usuario" record carrying a password is split into Credentials and
//     a Profile.
//
// Every step is idempotent, so the worker runs on each start.
type LegacyMigrationWorker struct {
	recipes   store.RecipeRepository
	favorites store.FavoritesRepository
	profiles  store.ProfileRepository
	ids       store.IDGenerator

	logger *logger.Logger
}

func NewLegacyMigrationWorker(
	recipes store.RecipeRepository,
	favorites store.FavoritesRepository,
	profiles store.ProfileRepository,
	ids store.IDGenerator,
	log *logger.Logger,
) *LegacyMigrationWorker {
	return &LegacyMigrationWorker{
		recipes:   recipes,
		favorites: favorites,
		profiles:  profiles,
		ids:       ids,
		logger:    log,
	}
}

func (w *LegacyMigrationWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "LegacyMigrationWorker.Run").Msg("running legacy migration...")

	if err := w.assignRecipeIDs(ctx); err != nil {
		return err
	}
	if err := w.mergeLegacyFavorites(ctx); err != nil {
		return err
	}
	if err := w.splitLegacyUser(ctx); err != nil {
		return err
	}

	return nil
}

func (w *LegacyMigrationWorker) assignRecipeIDs(ctx context.Context) error {
	assigned, err := w.recipes.AssignMissingIDs(ctx)
	if err != nil {
		return fmt.Errorf("error assigning recipe IDs: %w", err)
	}
	if assigned > 0 {
		w.logger.Info().Int("assigned", assigned).Msg("assigned IDs to legacy recipes")
	}

	return nil
}

func (w *LegacyMigrationWorker) mergeLegacyFavorites(ctx context.Context) error {
	titles, err := w.favorites.LegacyFavoriteTitles(ctx)
	switch {
	case errors.Is(err, store.ErrMalformedPayload):
		w.logger.Warn().Err(err).Msg("legacy favorites are unreadable, dropping them")
		return w.dropLegacyFavorites(ctx)
	case err != nil:
		return fmt.Errorf("error reading legacy favorites: %w", err)
	case titles == nil:
		return nil
	}

	marked, err := w.recipes.MarkFavoritesByTitle(ctx, titles)
	if err != nil {
		return fmt.Errorf("error marking legacy favorites: %w", err)
	}
	w.logger.Info().
		Int("legacy", len(titles)).
		Int("marked", marked).
		Msg("merged legacy favorites into recipe flags")

	return w.dropLegacyFavorites(ctx)
}

func (w *LegacyMigrationWorker) dropLegacyFavorites(ctx context.Context) error {
	if err := w.favorites.DropLegacy(ctx); err != nil {
		return fmt.Errorf("error dropping legacy favorites: %w", err)
	}
	return nil
}

// splitLegacyUser leaves the records alone unless "usuario" still carries a
// password. Existing credentials are never overwritten.
func (w *LegacyMigrationWorker) splitLegacyUser(ctx context.Context) error {
	legacy, err := w.profiles.GetLegacyUser(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return nil
	case errors.Is(err, store.ErrMalformedPayload):
		w.logger.Warn().Err(err).Msg("stored user record is unreadable, skipping")
		return nil
	case err != nil:
		return fmt.Errorf("error reading stored user: %w", err)
	case legacy.Password == "":
		return nil
	}

	credentials, err := w.profiles.GetCredentials(ctx)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		credentials = models.Credentials{
			UserID:   w.ids.Generate(),
			Email:    legacy.Email,
			Password: legacy.Password,
		}
		if err = w.profiles.SaveCredentials(ctx, credentials); err != nil {
			return fmt.Errorf("error saving migrated credentials: %w", err)
		}
		w.logger.Info().Str("email", legacy.Email).Msg("created credentials from legacy user")
	case err != nil:
		return fmt.Errorf("error reading credentials: %w", err)
	}

	profile := models.Profile{
		UserID: credentials.UserID,
		Name:   legacy.Name,
		Email:  legacy.Email,
		Phone:  legacy.Phone,
		Photo:  legacy.Photo,
	}
	if err = w.profiles.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("error saving migrated profile: %w", err)
	}

	return nil
}
