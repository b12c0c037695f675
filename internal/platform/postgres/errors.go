package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
	pgDuplicateDatabaseCode   = "42P04"
)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a second performance row for the same agent
// and period.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}

// isForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key violation, such as inserting a child row for a missing parent or
// deleting a parent that children still reference.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// isDuplicateDatabase checks for SQLSTATE 42P04, raised by CREATE DATABASE
// when the database already exists.
func isDuplicateDatabase(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgDuplicateDatabaseCode
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows, so each entity
// needs exactly one mapping routine for every read path.
type rowScanner interface {
	Scan(dest ...any) error
}
