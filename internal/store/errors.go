package store

import "errors"

// ErrStorage is the base error of every storage failure. Callers match it
// with errors.Is to treat unavailable media and malformed payloads alike.
var ErrStorage = errors.New("storage error")

// Sentinel errors returned by key-value stores and repositories. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when nothing is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageUnavailable is returned when the storage medium cannot be
	// reached or refuses the operation. It matches [ErrStorage].
	ErrStorageUnavailable = storageError("storage unavailable")

	// ErrMalformedPayload is returned when the stored bytes are not valid
	// JSON for the requested destination. It matches [ErrStorage].
	ErrMalformedPayload = storageError("malformed stored payload")

	// ErrIndexOutOfRange is returned by positional recipe operations when
	// the index is outside [0, len).
	ErrIndexOutOfRange = errors.New("recipe index out of range")

	// ErrRecipeNotFound is returned when no stored recipe has the
	// requested ID.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrExternalRecipeNotFound is returned when no external favorite has
	// the requested idMeal.
	ErrExternalRecipeNotFound = errors.New("external recipe not found")
)

// Low-level database operation errors wrapped by the SQL key-value store.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDSN is returned when the DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

type storageError string

func (e storageError) Error() string {
	return string(e)
}

func (e storageError) Is(target error) bool {
	return target == ErrStorage
}
