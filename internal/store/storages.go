package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

// Storages groups every repository over one key-value store so it can be
// passed to the service layer as a single value.
type Storages struct {
	KeyValueStore       KeyValueStore
	RecipeRepository    RecipeRepository
	FavoritesRepository FavoritesRepository
	ProfileRepository   ProfileRepository
	Notifier            Notifier
}

// NewStorages opens the key-value store selected by cfg.DB.DSN, migrates
// SQL schemas and wires the repositories to it:
//   - "memory" or ":memory:" keeps documents in process memory;
//   - postgres:// and postgresql:// URLs use PostgreSQL;
//   - any other value is a SQLite database file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	if isMemoryDSN(cfg.DB.DSN) {
		return NewStoragesWithKV(NewMemoryKeyValueStore(), log), nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesWithKV(NewSQLKeyValueStore(db, log), log), nil
}

// NewStoragesWithKV wires the repositories to an already opened store.
func NewStoragesWithKV(kv KeyValueStore, log *logger.Logger) *Storages {
	notifier := NewNotifier()

	return &Storages{
		KeyValueStore:       kv,
		RecipeRepository:    NewRecipeRepository(kv, utils.NewUUIDGenerator(), notifier, log),
		FavoritesRepository: NewFavoritesRepository(kv, notifier, log),
		ProfileRepository:   NewProfileRepository(kv, notifier, log),
		Notifier:            notifier,
	}
}

// Close releases the key-value store.
func (s *Storages) Close() error {
	return s.KeyValueStore.Close()
}
