package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// RemoveTerm
// ---------------------------------------------------------------------------

// RemoveTerm deletes a term unconditionally. Callers are expected to have
// obtained an explicit confirmation before invoking it.
func (s *Service) RemoveTerm(ctx context.Context, id int64) error {
	// Get term for the activity message.
	term, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.terms.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete term: %w", err)
	}

	s.log.InfoContext(ctx, "term removed", slog.Int64("term_id", id))
	s.record(ctx, domain.Activity{
		ID:        uuid.New(),
		Kind:      domain.ActivityTermRemoved,
		Message:   fmt.Sprintf("Slang dictionary term %q removed", term.Term),
		CreatedAt: time.Now().UTC(),
	})

	return nil
}
