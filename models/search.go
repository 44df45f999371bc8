package models

// SearchResult is the aggregated result of a local plus remote recipe search.
// Each branch fails independently: a failed branch has an empty slice and
// its error set.
type SearchResult struct {
	Local  []Recipe         `json:"local"`
	Remote []ExternalRecipe `json:"remote"`

	LocalErr  error `json:"-"`
	RemoteErr error `json:"-"`
}
