package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeValidator rejects recipes missing any of the fields the edit form
// requires. Notes and image are optional.
type RecipeValidator struct{}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateRecipe(_ context.Context, r models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldIngredients, FieldPreparation, FieldPreparationTime}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(r.Title) == "" {
				return invalid(f, ErrEmptyTitle)
			}
		case FieldIngredients:
			if len(r.IngredientList()) == 0 {
				return invalid(f, ErrEmptyIngredients)
			}
		case FieldPreparation:
			if strings.TrimSpace(r.Preparation) == "" {
				return invalid(f, ErrEmptyPreparation)
			}
		case FieldPreparationTime:
			if strings.TrimSpace(r.PreparationTime) == "" {
				return invalid(f, ErrEmptyPreparationTime)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
