package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

type sqlKeyValueStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLKeyValueStore returns a [KeyValueStore] over the kv_store table.
// The schema must already be migrated.
func NewSQLKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqlKeyValueStore{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqlKeyValueStore) Get(ctx context.Context, key string, dst any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(s.db.placeholder, key)
	if err != nil {
		return err
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlKeyValueStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return fmt.Errorf("%w: reading %q: %w", ErrExecutingQuery, key, s.db.errorClassificator.Classify(err))
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		log.Warn().Err(err).
			Str("func", "sqlKeyValueStore.Get").
			Str("key", key).
			Msg("stored value is not valid JSON")
		return fmt.Errorf("%w: %q: %w", ErrMalformedPayload, key, err)
	}

	return nil
}

func (s *sqlKeyValueStore) Set(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding %q: %w", ErrMalformedPayload, key, err)
	}

	query, args, err := buildUpsertValueQuery(s.db.placeholder, key, string(payload), s.now())
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlKeyValueStore.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: writing %q: %w", ErrExecutingQuery, key, s.db.errorClassificator.Classify(err))
	}

	return nil
}

func (s *sqlKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValueQuery(s.db.placeholder, key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlKeyValueStore.Remove").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: removing %q: %w", ErrExecutingQuery, key, s.db.errorClassificator.Classify(err))
	}

	return nil
}

func (s *sqlKeyValueStore) Close() error {
	return s.db.Close()
}
