package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeValidationService rejects incomplete recipes before they reach the
// wrapped service. Reads pass through untouched.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

func (v *RecipeValidationService) List(ctx context.Context) []models.Recipe {
	return v.inner.List(ctx)
}

func (v *RecipeValidationService) Get(ctx context.Context, id string) (models.Recipe, error) {
	return v.inner.Get(ctx, id)
}

func (v *RecipeValidationService) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before saving: %w", err)
	}

	return v.inner.Create(ctx, recipe)
}

func (v *RecipeValidationService) Update(ctx context.Context, id string, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, recipe)
}

func (v *RecipeValidationService) Delete(ctx context.Context, id string) error {
	return v.inner.Delete(ctx, id)
}

func (v *RecipeValidationService) SetFavorite(ctx context.Context, id string, value bool) error {
	return v.inner.SetFavorite(ctx, id, value)
}

func (v *RecipeValidationService) Search(ctx context.Context, term string) []models.Recipe {
	return v.inner.Search(ctx, term)
}

func (v *RecipeValidationService) UpdateAt(ctx context.Context, index int, recipe models.Recipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before updating: %w", err)
	}

	return v.inner.UpdateAt(ctx, index, recipe)
}

func (v *RecipeValidationService) DeleteAt(ctx context.Context, index int) error {
	return v.inner.DeleteAt(ctx, index)
}

func (v *RecipeValidationService) SetFavoriteAt(ctx context.Context, index int, value bool) error {
	return v.inner.SetFavoriteAt(ctx, index, value)
}
