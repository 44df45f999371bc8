// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxMealIngredients is the number of strIngredientN/strMeasureN pairs a
// TheMealDB meal document carries.
const maxMealIngredients = 20

// IngredientMeasure is one ingredient of an external recipe together with its
// measure, e.g. {"Rice", "1 cup"}.
type IngredientMeasure struct {
	Ingredient string `json:"ingredient"`
	Measure    string `json:"measure"`
}

// ExternalRecipe is a meal returned by the public recipe search API.
//
// Identity is ID (idMeal), assigned by the API. The record is never mutated
// locally: it is either stored verbatim in the external favorites collection
// or discarded. To keep storage verbatim, the complete source document is
// retained and written back on marshal, including fields this type does not
// model.
type ExternalRecipe struct {
	ID           string
	Name         string
	Thumb        string
	Category     string
	Area         string
	Instructions string
	Youtube      string

	// Ingredients lists the non-empty ingredient/measure pairs in API order.
	Ingredients []IngredientMeasure

	raw map[string]json.RawMessage
}

var externalScalarFields = []string{
	"idMeal", "strMeal", "strMealThumb", "strCategory", "strArea", "strInstructions", "strYoutube",
}

func (e *ExternalRecipe) scalar(field string) *string {
	switch field {
	case "idMeal":
		return &e.ID
	case "strMeal":
		return &e.Name
	case "strMealThumb":
		return &e.Thumb
	case "strCategory":
		return &e.Category
	case "strArea":
		return &e.Area
	case "strInstructions":
		return &e.Instructions
	case "strYoutube":
		return &e.Youtube
	}
	return nil
}

// UnmarshalJSON implements [json.Unmarshaler]. Null or missing string fields
// decode to "".
func (e *ExternalRecipe) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode external recipe: %w", err)
	}

	decoded := ExternalRecipe{raw: raw}
	for _, field := range externalScalarFields {
		value, err := rawString(raw, field)
		if err != nil {
			return err
		}
		*decoded.scalar(field) = value
	}

	for i := 1; i <= maxMealIngredients; i++ {
		ingredient, err := rawString(raw, fmt.Sprintf("strIngredient%d", i))
		if err != nil {
			return err
		}
		measure, err := rawString(raw, fmt.Sprintf("strMeasure%d", i))
		if err != nil {
			return err
		}
		if strings.TrimSpace(ingredient) == "" {
			continue
		}
		decoded.Ingredients = append(decoded.Ingredients, IngredientMeasure{
			Ingredient: ingredient,
			Measure:    measure,
		})
	}

	*e = decoded
	return nil
}

// MarshalJSON implements [json.Marshaler]. A recipe decoded from JSON is
// written back with its original fields; a recipe built in code is written in
// the API's flat strIngredientN/strMeasureN layout.
func (e ExternalRecipe) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.raw)+len(externalScalarFields))
	for k, v := range e.raw {
		out[k] = v
	}

	for _, field := range externalScalarFields {
		value := *e.scalar(field)
		if current, err := rawString(e.raw, field); err == nil && current == value {
			if _, ok := e.raw[field]; ok || value == "" {
				continue
			}
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[field] = encoded
	}

	if e.raw == nil {
		for i, pair := range e.Ingredients {
			if i >= maxMealIngredients {
				break
			}
			ingredient, _ := json.Marshal(pair.Ingredient)
			measure, _ := json.Marshal(pair.Measure)
			out[fmt.Sprintf("strIngredient%d", i+1)] = ingredient
			out[fmt.Sprintf("strMeasure%d", i+1)] = measure
		}
	}

	return json.Marshal(out)
}

// IngredientLines renders the ingredients as "<ingredient> - <measure>" lines.
func (e ExternalRecipe) IngredientLines() []string {
	lines := make([]string, 0, len(e.Ingredients))
	for _, pair := range e.Ingredients {
		lines = append(lines, fmt.Sprintf("%s - %s", pair.Ingredient, pair.Measure))
	}
	return lines
}

func rawString(raw map[string]json.RawMessage, field string) (string, error) {
	value, ok := raw[field]
	if !ok || string(value) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", fmt.Errorf("decode %s: %w", field, err)
	}
	return s, nil
}

// MealSearchResponse is the search endpoint payload. Meals is nil when the
// API found nothing.
type MealSearchResponse struct {
	Meals []ExternalRecipe `json:"meals"`
}
