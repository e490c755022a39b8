// Package postgres implements the repositories of the service on top of PostgreSQL.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationErrCode = "23505"

const (
	shortCodeConstraint    = "urls_short_code_key"
	canonicalURLConstraint = "urls_canonical_long_url_idx"
)

func asUniqueViolationError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationErrCode {
		return pgErr, true
	}

	return nil, false
}
