package models

// Storage keys of the persisted JSON documents.
const (
	// KeyRecipes holds the array of user-authored recipes.
	KeyRecipes = "receitas"
	// KeyLegacyFavorites holds the legacy title-keyed favorites array.
	// It is only read by the legacy migration and then removed.
	KeyLegacyFavorites = "favoritos"
	// KeyExternalFavorites holds the array of favorited external recipes.
	KeyExternalFavorites = "favoritosAPI"
	// KeyProfile holds the active user's profile record.
	KeyProfile = "usuario"
	// KeyCredentials holds the registered login credentials.
	KeyCredentials = "credenciais"
)
