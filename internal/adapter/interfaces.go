// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the third-party services the recipe
// keeper depends on.
//
// The primary abstraction is [RecipeAPIAdapter], which decouples the service
// layer from the public recipe API. The package ships an HTTP/JSON
// implementation for TheMealDB ([NewMealDBAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError. Every transport failure and non-2xx response matches
// [ErrNetwork] through [errors.Is], and status-specific sentinels such as
// [ErrNotFound] are wrapped alongside it.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RecipeAPIAdapter searches the public recipe API.
type RecipeAPIAdapter interface {
	// Search returns meals whose name matches term. An empty term is sent
	// as-is and yields the API's default set. A response with "meals": null
	// is an empty result, not an error. Transport failures and non-2xx
	// responses return an error matching ErrNetwork.
	Search(ctx context.Context, term string) ([]models.ExternalRecipe, error)
}
