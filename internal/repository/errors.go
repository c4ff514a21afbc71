package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tourism/internal/domain"
)

// mapError translates storage errors into the domain taxonomy. Missing rows
// become ErrNotFound, unique/foreign-key violations become ErrConflict,
// everything else is wrapped as a retryable ErrPersistence.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	// Already part of the taxonomy (e.g. a conflict detected inside a
	// transaction closure): pass through untouched.
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrPersistence) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: duplicate key", domain.ErrConflict)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503":
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}
