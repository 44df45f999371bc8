package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

// NewRecipeService delegates to the repository and logs failures. Input
// validation is added by wrapping the result with NewRecipeValidationService.
func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) List(ctx context.Context) []models.Recipe {
	return s.recipeRepository.List(ctx)
}

func (s *recipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := s.recipeRepository.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("recipe lookup failed")
		return models.Recipe{}, fmt.Errorf("error getting recipe: %w", err)
	}

	return recipe, nil
}

func (s *recipeService) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	recipe.ID = ""
	created, err := s.recipeRepository.Create(ctx, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("titulo", recipe.Title).Msg("recipe creation failed")
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	return created, nil
}

func (s *recipeService) Update(ctx context.Context, id string, recipe models.Recipe) (models.Recipe, error) {
	updated, err := s.recipeRepository.Update(ctx, id, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("recipe update failed")
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}

	return updated, nil
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	if err := s.recipeRepository.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("recipe deletion failed")
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	return nil
}

func (s *recipeService) SetFavorite(ctx context.Context, id string, value bool) error {
	if err := s.recipeRepository.SetFavorite(ctx, id, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Bool("favorito", value).Msg("setting favorite failed")
		return fmt.Errorf("error setting favorite: %w", err)
	}

	return nil
}

func (s *recipeService) Search(ctx context.Context, term string) []models.Recipe {
	return s.recipeRepository.Search(ctx, term)
}

func (s *recipeService) UpdateAt(ctx context.Context, index int, recipe models.Recipe) (models.Recipe, error) {
	updated, err := s.recipeRepository.UpdateAt(ctx, index, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("index", index).Msg("recipe update failed")
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}

	return updated, nil
}

func (s *recipeService) DeleteAt(ctx context.Context, index int) error {
	if err := s.recipeRepository.DeleteAt(ctx, index); err != nil {
		logger.FromContext(ctx).Err(err).Int("index", index).Msg("recipe deletion failed")
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	return nil
}

func (s *recipeService) SetFavoriteAt(ctx context.Context, index int, value bool) error {
	if err := s.recipeRepository.SetFavoriteAt(ctx, index, value); err != nil {
		logger.FromContext(ctx).Err(err).Int("index", index).Bool("favorito", value).Msg("setting favorite failed")
		return fmt.Errorf("error setting favorite: %w", err)
	}

	return nil
}
