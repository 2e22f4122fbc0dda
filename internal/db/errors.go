package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFoundOrForbidden is returned by user scoped reads and writes that matched no row.
// Missing rows and rows owned by someone else are indistinguishable.
var ErrNotFoundOrForbidden = errors.New("not found or access denied")

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
)

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// IsUniqueViolation reports a duplicate key, e.g. a taken username.
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation)
}

// IsForeignKeyViolation reports a write referencing a session, variation or
// muscle group row that does not exist.
func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation)
}
