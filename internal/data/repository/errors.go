package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a filter matched zero records.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a filter matched more than one record
	// on a single-record operation, or when an insert/update violated a
	// uniqueness constraint.
	ErrConflict = errors.New("record conflict")
)

// wrapConflict maps a Postgres unique violation onto ErrConflict,
// keeping the constraint name so callers can render a field-specific
// message. Other errors pass through untouched.
func wrapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("constraint %s violated: %w", pgErr.ConstraintName, ErrConflict)
	}
	return err
}
