package models

// Origin tells where a favorite comes from, so a consumer can route back to
// the matching detail view and removal operation.
type Origin string

const (
	// OriginLocal tags a user-authored recipe flagged as favorite.
	OriginLocal Origin = "local"
	// OriginAPI tags an external recipe from the favorites set.
	OriginAPI Origin = "api"
)

// FavoriteItem is one entry of the combined favorites view.
type FavoriteItem struct {
	// Origin is the source tag of the item.
	Origin Origin `json:"origem"`

	// ID is the local recipe ID for OriginLocal and idMeal for OriginAPI.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"titulo"`

	// Image is the display image URI, empty when the recipe has none.
	Image string `json:"imagem,omitempty"`

	// Recipe is set for OriginLocal items.
	Recipe *Recipe `json:"receita,omitempty"`

	// ExternalRecipe is set for OriginAPI items.
	ExternalRecipe *ExternalRecipe `json:"receitaApi,omitempty"`
}

// NewLocalFavorite builds a combined-view item from a local recipe.
func NewLocalFavorite(r Recipe) FavoriteItem {
	item := FavoriteItem{
		Origin: OriginLocal,
		ID:     r.ID,
		Title:  r.Title,
		Recipe: &r,
	}
	if r.Image != nil {
		item.Image = *r.Image
	}
	return item
}

// NewAPIFavorite builds a combined-view item from an external recipe.
func NewAPIFavorite(e ExternalRecipe) FavoriteItem {
	return FavoriteItem{
		Origin:         OriginAPI,
		ID:             e.ID,
		Title:          e.Name,
		Image:          e.Thumb,
		ExternalRecipe: &e,
	}
}
