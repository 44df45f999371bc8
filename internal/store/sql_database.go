package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/migrations"
)

// DB wraps a database/sql connection together with the dialect specific
// pieces the key-value store needs.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps a driver error to one of the storage sentinels.
type ErrorClassificator interface {
	Classify(err error) error
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// NewConnect opens the SQL database named by cfg.DSN: postgres:// and
// postgresql:// URLs use PostgreSQL through pgx, anything else is a SQLite
// file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// isMemoryDSN reports whether dsn selects the in-process store.
func isMemoryDSN(dsn string) bool {
	return dsn == "memory" || dsn == ":memory:"
}

// classifyConnError maps errors common to every database/sql driver.
// It returns nil when err needs driver specific classification.
// database/sql retries driver.ErrBadConn itself, but it still surfaces when
// the retries run out or when a driver wraps it in its own error.
func classifyConnError(err error) error {
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
