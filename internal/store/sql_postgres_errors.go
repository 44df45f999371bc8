package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify wraps err in ErrStorageUnavailable when the server or the
// connection is unusable, and in ErrStorage otherwise.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	if classified := classifyConnError(err); classified != nil {
		return classified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isUnavailablePgCode(pgErr.Code) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// isUnavailablePgCode reports whether a PostgreSQL error code means the
// medium cannot serve requests right now.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Unavailable codes:
//   - Class 08: connection exceptions
//   - Class 53: insufficient resources (disk full, out of memory, too many connections)
//   - Class 57: operator intervention (shutdown, cannot connect now)
//   - Class 58: system errors (I/O)
func isUnavailablePgCode(code string) bool {
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsInsufficientResources(code) ||
		pgerrcode.IsOperatorIntervention(code) ||
		pgerrcode.IsSystemError(code)
}
