package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SolarInitiative/Cloud-Solar-Backend/internal/types"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// MapError translates driver errors into the domain sentinels: no rows becomes
// types.ErrNotFound, unique violations types.ErrConflict and foreign key violations
// types.ErrBadReference.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return types.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", types.ErrConflict, pgErr.Message)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", types.ErrBadReference, pgErr.Message)
		}
	}
	return err
}

// IgnoreNotFound drops types.ErrNotFound so it is not counted as a query error.
func IgnoreNotFound(err error) error {
	if errors.Is(err, types.ErrNotFound) {
		return nil
	}
	return err
}
