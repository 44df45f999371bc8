package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

type recipeRepository struct {
	mu       sync.Mutex
	kv       KeyValueStore
	ids      IDGenerator
	notifier Notifier
	logger   *logger.Logger
}

// NewRecipeRepository returns a [RecipeRepository] persisting the whole
// collection under [models.KeyRecipes] on every mutation.
func NewRecipeRepository(kv KeyValueStore, ids IDGenerator, notifier Notifier, log *logger.Logger) RecipeRepository {
	return &recipeRepository{
		kv:       kv,
		ids:      ids,
		notifier: notifier,
		logger:   log,
	}
}

func (r *recipeRepository) List(ctx context.Context) []models.Recipe {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "recipeRepository.List").
			Msg("recipes unreadable, returning empty list")
		return []models.Recipe{}
	}

	return recipes
}

func (r *recipeRepository) Get(ctx context.Context, id string) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	idx := indexByID(recipes, id)
	if idx < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}

	return recipes[idx], nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe.ID = r.ids.Generate()
	recipes = append(recipes, recipe)

	if err = r.save(ctx, recipes); err != nil {
		return models.Recipe{}, err
	}
	r.publish(models.ChangeCreated, recipe.ID)

	return recipe, nil
}

func (r *recipeRepository) Update(ctx context.Context, id string, recipe models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	idx := indexByID(recipes, id)
	if idx < 0 {
		return models.Recipe{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}

	return r.replaceAt(ctx, recipes, idx, recipe)
}

func (r *recipeRepository) UpdateAt(ctx context.Context, index int, recipe models.Recipe) (models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return models.Recipe{}, err
	}
	if err = checkIndex(index, len(recipes)); err != nil {
		return models.Recipe{}, err
	}

	return r.replaceAt(ctx, recipes, index, recipe)
}

// replaceAt overwrites recipes[idx] keeping its ID and favorite flag.
func (r *recipeRepository) replaceAt(ctx context.Context, recipes []models.Recipe, idx int, recipe models.Recipe) (models.Recipe, error) {
	recipe.ID = recipes[idx].ID
	if recipe.ID == "" {
		recipe.ID = r.ids.Generate()
	}
	recipe.Favorite = recipes[idx].Favorite
	recipes[idx] = recipe

	if err := r.save(ctx, recipes); err != nil {
		return models.Recipe{}, err
	}
	r.publish(models.ChangeUpdated, recipe.ID)

	return recipe, nil
}

func (r *recipeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(recipes, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}

	return r.removeAt(ctx, recipes, idx)
}

// DeleteAt removes the recipe at index. Every later recipe moves down by one
// position.
func (r *recipeRepository) DeleteAt(ctx context.Context, index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err = checkIndex(index, len(recipes)); err != nil {
		return err
	}

	return r.removeAt(ctx, recipes, index)
}

func (r *recipeRepository) removeAt(ctx context.Context, recipes []models.Recipe, idx int) error {
	id := recipes[idx].ID
	recipes = append(recipes[:idx], recipes[idx+1:]...)

	if err := r.save(ctx, recipes); err != nil {
		return err
	}
	r.publish(models.ChangeDeleted, id)

	return nil
}

func (r *recipeRepository) SetFavorite(ctx context.Context, id string, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}

	idx := indexByID(recipes, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}

	return r.setFavoriteAt(ctx, recipes, idx, value)
}

func (r *recipeRepository) SetFavoriteAt(ctx context.Context, index int, value bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err = checkIndex(index, len(recipes)); err != nil {
		return err
	}

	return r.setFavoriteAt(ctx, recipes, index, value)
}

func (r *recipeRepository) setFavoriteAt(ctx context.Context, recipes []models.Recipe, idx int, value bool) error {
	recipes[idx].Favorite = value

	if err := r.save(ctx, recipes); err != nil {
		return err
	}
	r.publish(models.ChangeUpdated, recipes[idx].ID)

	return nil
}

// Search returns recipes whose titulo contains term, ignoring case and
// diacritics, in storage order.
func (r *recipeRepository) Search(ctx context.Context, term string) []models.Recipe {
	found, err := r.Find(ctx, term)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "recipeRepository.Search").
			Msg("recipes unreadable, returning empty result")
		return []models.Recipe{}
	}

	return found
}

func (r *recipeRepository) Find(ctx context.Context, term string) ([]models.Recipe, error) {
	r.mu.Lock()
	recipes, err := r.load(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	found := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if utils.ContainsFolded(recipe.Title, term) {
			found = append(found, recipe)
		}
	}

	return found, nil
}

func (r *recipeRepository) AssignMissingIDs(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = r.ids.Generate()
			assigned++
		}
	}
	if assigned == 0 {
		return 0, nil
	}

	if err = r.save(ctx, recipes); err != nil {
		return 0, err
	}
	r.publish(models.ChangeUpdated, "")

	return assigned, nil
}

func (r *recipeRepository) MarkFavoritesByTitle(ctx context.Context, titles []string) (int, error) {
	if len(titles) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	recipes, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	wanted := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		wanted[title] = struct{}{}
	}

	changed := 0
	for i := range recipes {
		if _, ok := wanted[recipes[i].Title]; ok && !recipes[i].Favorite {
			recipes[i].Favorite = true
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err = r.save(ctx, recipes); err != nil {
		return 0, err
	}
	r.publish(models.ChangeUpdated, "")

	return changed, nil
}

// load reads the collection. A missing key or an undecodable document is an
// empty collection; an unreachable medium is an error.
func (r *recipeRepository) load(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	err := r.kv.Get(ctx, models.KeyRecipes, &recipes)
	switch {
	case err == nil:
	case errors.Is(err, ErrKeyNotFound):
		return []models.Recipe{}, nil
	case errors.Is(err, ErrMalformedPayload):
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "recipeRepository.load").
			Msg("stored recipes are malformed, treating as empty")
		return []models.Recipe{}, nil
	default:
		return nil, fmt.Errorf("error loading recipes: %w", err)
	}

	if recipes == nil {
		recipes = []models.Recipe{}
	}

	return recipes, nil
}

// save writes the collection back, giving an ID to any record lacking one.
func (r *recipeRepository) save(ctx context.Context, recipes []models.Recipe) error {
	for i := range recipes {
		if recipes[i].ID == "" {
			recipes[i].ID = r.ids.Generate()
		}
	}

	if err := r.kv.Set(ctx, models.KeyRecipes, recipes); err != nil {
		return fmt.Errorf("error saving recipes: %w", err)
	}

	return nil
}

func (r *recipeRepository) publish(op models.ChangeOp, id string) {
	if r.notifier == nil {
		return
	}
	r.notifier.Publish(models.ChangeEvent{Key: models.KeyRecipes, Op: op, ID: id})
}

func indexByID(recipes []models.Recipe, id string) int {
	if id == "" {
		return -1
	}
	for i := range recipes {
		if recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, length)
	}
	return nil
}
