package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.NoError(t, c.Classify(nil))
	assert.ErrorIs(t, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}), ErrStorageUnavailable)
	assert.ErrorIs(t, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})), ErrStorageUnavailable)
	assert.ErrorIs(t, c.Classify(context.DeadlineExceeded), ErrStorageUnavailable)

	err := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint})
	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.NoError(t, c.Classify(nil))
	assert.ErrorIs(t, c.Classify(&pgconn.PgError{Code: pgerrcode.TooManyConnections}), ErrStorageUnavailable)
	assert.ErrorIs(t, c.Classify(&pgconn.PgError{Code: pgerrcode.IOError}), ErrStorageUnavailable)

	err := c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.ErrorIs(t, err, ErrStorage)
	assert.False(t, errors.Is(err, ErrStorageUnavailable))
}

func TestStorageErrorHierarchy(t *testing.T) {
	assert.ErrorIs(t, ErrStorageUnavailable, ErrStorage)
	assert.ErrorIs(t, ErrMalformedPayload, ErrStorage)
	assert.NotErrorIs(t, ErrMalformedPayload, ErrStorageUnavailable)
	assert.NotErrorIs(t, ErrKeyNotFound, ErrStorage)
	assert.NotErrorIs(t, ErrIndexOutOfRange, ErrStorage)
}
