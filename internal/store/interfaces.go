// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore keeps named JSON documents. Values are marshalled on Set and
// unmarshalled into dst on Get; callers never see raw bytes.
type KeyValueStore interface {
	// Get decodes the document stored under key into dst. Returns
	// ErrKeyNotFound when the key is absent, ErrMalformedPayload when the
	// stored bytes do not decode and ErrStorageUnavailable on medium errors.
	Get(ctx context.Context, key string, dst any) error
	// Set stores value under key, replacing any previous document.
	Set(ctx context.Context, key string, value any) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying medium.
	Close() error
}

// RecipeRepository owns the "receitas" collection.
type RecipeRepository interface {
	List(ctx context.Context) []models.Recipe
	Get(ctx context.Context, id string) (models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	Update(ctx context.Context, id string, recipe models.Recipe) (models.Recipe, error)
	Delete(ctx context.Context, id string) error
	SetFavorite(ctx context.Context, id string, value bool) error
	Search(ctx context.Context, term string) []models.Recipe
	// Find is Search without the degradation: a storage failure is
	// returned instead of an empty result.
	Find(ctx context.Context, term string) ([]models.Recipe, error)

	UpdateAt(ctx context.Context, index int, recipe models.Recipe) (models.Recipe, error)
	DeleteAt(ctx context.Context, index int) error
	SetFavoriteAt(ctx context.Context, index int, value bool) error

	// AssignMissingIDs gives an ID to every stored recipe lacking one and
	// returns how many were assigned.
	AssignMissingIDs(ctx context.Context) (int, error)
	// MarkFavoritesByTitle sets favorito on every recipe whose titulo is in
	// titles and returns how many recipes changed.
	MarkFavoritesByTitle(ctx context.Context, titles []string) (int, error)
}

// FavoritesRepository owns the "favoritosAPI" set and the legacy
// "favoritos" collection.
type FavoritesRepository interface {
	IsFavoriteExternal(ctx context.Context, id string) bool
	ToggleFavoriteExternal(ctx context.Context, recipe models.ExternalRecipe) (bool, error)
	ListExternal(ctx context.Context) []models.ExternalRecipe
	RemoveExternal(ctx context.Context, id string) error

	LegacyFavoriteTitles(ctx context.Context) ([]string, error)
	DropLegacy(ctx context.Context) error
}

// ProfileRepository owns the "usuario" profile and "credenciais" records.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
	ClearProfile(ctx context.Context) error

	GetCredentials(ctx context.Context) (models.Credentials, error)
	SaveCredentials(ctx context.Context, credentials models.Credentials) error

	// GetLegacyUser reads a "usuario" record written before credentials
	// were stored separately.
	GetLegacyUser(ctx context.Context) (models.LegacyUser, error)
}

// Notifier fans change events out to subscribers.
type Notifier interface {
	Publish(event models.ChangeEvent)
	Subscribe() (<-chan models.ChangeEvent, func())
}
