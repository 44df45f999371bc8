// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the recipe keeper's business rules on top of the
// store repositories and the public recipe API adapter.
//
// Services validate input, translate storage sentinels into domain errors
// ([ErrNoAccount], [ErrMismatch], [ErrNoProfile]) and log failures through
// the request-scoped logger found in the context.
package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RecipeServiceWrapper

// RecipeService manages the user's own recipes.
type RecipeService interface {
	List(ctx context.Context) []models.Recipe
	Get(ctx context.Context, id string) (models.Recipe, error)
	Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	Update(ctx context.Context, id string, recipe models.Recipe) (models.Recipe, error)
	Delete(ctx context.Context, id string) error
	SetFavorite(ctx context.Context, id string, value bool) error
	Search(ctx context.Context, term string) []models.Recipe

	UpdateAt(ctx context.Context, index int, recipe models.Recipe) (models.Recipe, error)
	DeleteAt(ctx context.Context, index int) error
	SetFavoriteAt(ctx context.Context, index int, value bool) error
}

// RecipeServiceWrapper decorates a RecipeService, e.g. with input validation.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}

// FavoritesService merges local favorite flags and the external favorites
// set into one view.
type FavoritesService interface {
	// CombinedView lists local favorites in storage order followed by every
	// external favorite.
	CombinedView(ctx context.Context) []models.FavoriteItem
	// RemoveCombined removes item from the collection its origin names.
	RemoveCombined(ctx context.Context, item models.FavoriteItem) error

	ToggleExternal(ctx context.Context, recipe models.ExternalRecipe) (bool, error)
	IsFavoriteExternal(ctx context.Context, id string) bool
	// ToggleLocal flips the favorite flag of a local recipe and returns the
	// new value.
	ToggleLocal(ctx context.Context, id string) (bool, error)
}

// ProfileService handles registration, login and the active profile.
type ProfileService interface {
	RegisterCredentials(ctx context.Context, form models.SignUp) (models.Profile, error)
	Authenticate(ctx context.Context, email, password string) (models.Profile, error)

	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	ClearProfile(ctx context.Context) error

	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SearchService queries local recipes and the public API together.
type SearchService interface {
	Search(ctx context.Context, term string) models.SearchResult
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
