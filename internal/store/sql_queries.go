package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"

	upsertKVSuffix = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

func buildGetValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(ph).
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertValueQuery(ph sq.PlaceholderFormat, key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(ph).
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix(upsertKVSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteValueQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(ph).
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
