package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// sqlStates maps integrity-constraint SQLSTATE codes to domain sentinels.
var sqlStates = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
}

// MapError translates a pgx error for entity id into a domain sentinel and
// prefixes it with "entity id". Constraint violations name the constraint.
// Context errors and unrecognised errors keep their original chain.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	prefix := fmt.Sprintf("%s %d", entity, id)

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", prefix, err)
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, ok := sqlStates[pgErr.Code]; ok {
			if pgErr.ConstraintName != "" {
				return fmt.Errorf("%s: %s: %w", prefix, pgErr.ConstraintName, sentinel)
			}
			return fmt.Errorf("%s: %w", prefix, sentinel)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
