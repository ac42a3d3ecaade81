package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	driver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// mapError converts database/sql and SQLite errors to domain errors.
// Context errors pass through wrapped.
func mapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %d: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	var se *driver.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%s %d: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %d: %w", entity, id, err)
}
