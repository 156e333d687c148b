package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a Postgres duplicate-key error,
// used to turn insert failures on existing identities into conflicts.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
