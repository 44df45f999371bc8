// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Recipe is a user-authored dish record stored locally under the
// [KeyRecipes] key.
//
// JSON field names follow the stored document format, so collections written
// by earlier versions of the application decode without conversion.
type Recipe struct {
	// ID is the stable identifier assigned at creation (UUIDv7).
	// Records written before identifiers existed have an empty ID until the
	// next write or the legacy migration assigns one.
	ID string `json:"id,omitempty"`

	// Title is the recipe display name. Search matches against it only.
	Title string `json:"titulo"`

	// Ingredients holds ingredient lines separated by "\n".
	// Use [Recipe.IngredientList] to read them.
	Ingredients string `json:"ingredientes"`

	// Preparation describes how to cook the dish.
	Preparation string `json:"modoPreparo"`

	// PreparationTime is a free-form duration such as "30 min".
	PreparationTime string `json:"tempoPreparo"`

	// Notes holds optional remarks.
	Notes string `json:"observacoes,omitempty"`

	// Image is an optional image URI. Nil means no image.
	Image *string `json:"imagem"`

	// Favorite marks the recipe as a favorite. Absent in stored JSON means false.
	Favorite bool `json:"favorito,omitempty"`
}

// IngredientList parses Ingredients into ordered ingredient lines:
// split on newline, trim, drop empty lines.
func (r Recipe) IngredientList() []string {
	return SplitIngredients(r.Ingredients)
}

// SplitIngredients is the single parsing contract for newline-delimited
// ingredient text.
func SplitIngredients(raw string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
