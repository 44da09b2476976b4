package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain error they represent.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: asset of a vanished prediction
	"23514": domain.ErrValidation,    // check_violation: confidence outside [0, 1]
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and its ID. Context errors and unknown codes are wrapped unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s %s: %w (%s)", entity, id, mapped, pgErr.ConstraintName)
			}
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
