package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type searchService struct {
	recipeRepository store.RecipeRepository
	recipeAPI        adapter.RecipeAPIAdapter

	logger *logger.Logger
}

func NewSearchService(recipeRepository store.RecipeRepository, recipeAPI adapter.RecipeAPIAdapter, logger *logger.Logger) SearchService {
	return &searchService{
		recipeRepository: recipeRepository,
		recipeAPI:        recipeAPI,
		logger:           logger,
	}
}

// Search runs the local and remote queries concurrently. A failing branch
// never cancels the other one: its slice is left empty and its error is
// reported in the result.
func (s *searchService) Search(ctx context.Context, term string) models.SearchResult {
	log := logger.FromContext(ctx)
	result := models.SearchResult{
		Local:  []models.Recipe{},
		Remote: []models.ExternalRecipe{},
	}

	var g errgroup.Group

	g.Go(func() error {
		recipes, err := s.recipeRepository.Find(ctx, term)
		if err != nil {
			log.Warn().Err(err).Str("term", term).Msg("local recipe search failed")
			result.LocalErr = err
			return nil
		}
		if recipes != nil {
			result.Local = recipes
		}
		return nil
	})

	g.Go(func() error {
		meals, err := s.recipeAPI.Search(ctx, term)
		if err != nil {
			log.Warn().Err(err).Str("term", term).Msg("remote recipe search failed")
			result.RemoteErr = err
			return nil
		}
		if meals != nil {
			result.Remote = meals
		}
		return nil
	})

	_ = g.Wait()

	return result
}
