package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const searchPath = "/search.php"

type mealDBAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewMealDBAdapter constructs the TheMealDB implementation of
// [RecipeAPIAdapter]. The base URL comes from cfg.MealDBURL and every request
// is bounded by cfg.RequestTimeout. No request is retried.
func NewMealDBAdapter(cfg config.Adapter, log *logger.Logger) (RecipeAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.MealDBURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mealdb url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout.Std()).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &mealDBAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [RecipeAPIAdapter].
func (m *mealDBAdapter) Search(ctx context.Context, term string) ([]models.ExternalRecipe, error) {
	log := logger.FromContext(ctx)

	resp, err := m.client.R().
		SetContext(ctx).
		SetQueryParam("s", term).
		Get(searchPath)
	if err != nil {
		log.Err(err).
			Str("func", "mealDBAdapter.Search").
			Str("term", term).
			Msg("search request failed")
		return nil, fmt.Errorf("%w: search request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).
			Str("func", "mealDBAdapter.Search").
			Int("status", resp.StatusCode()).
			Msg("search returned non-2xx status")
		return nil, err
	}

	var payload models.MealSearchResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).
			Str("func", "mealDBAdapter.Search").
			Msg("search response is not valid JSON")
		return nil, fmt.Errorf("%w: %w: %w", ErrNetwork, ErrDecodingResponse, err)
	}

	if payload.Meals == nil {
		return []models.ExternalRecipe{}, nil
	}

	return payload.Meals, nil
}
