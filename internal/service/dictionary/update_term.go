package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// UpdateTerm
// ---------------------------------------------------------------------------

// UpdateTerm merges the provided fields into an existing term.
// ID and dateAdded are never changed.
func (s *Service) UpdateTerm(ctx context.Context, input UpdateTermInput) (*domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.TermPatch{
		Severity: input.Severity,
		Category: input.Category,
		Examples: input.examples(),
		Status:   input.Status,
	}
	if input.Term != nil {
		v := strings.TrimSpace(*input.Term)
		patch.Term = &v
	}
	if input.Definition != nil {
		v := strings.TrimSpace(*input.Definition)
		patch.Definition = &v
	}

	if patch.IsEmpty() {
		// Nothing to merge; still report NotFound for unknown IDs.
		return s.terms.GetByID(ctx, input.ID)
	}

	updated, err := s.terms.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update term: %w", err)
	}

	s.log.InfoContext(ctx, "term updated", slog.Int64("term_id", updated.ID))
	s.record(ctx, domain.Activity{
		ID:        uuid.New(),
		Kind:      domain.ActivityTermUpdated,
		Message:   fmt.Sprintf("Slang dictionary term %q updated", updated.Term),
		Severity:  severityPtr(updated.Severity),
		CreatedAt: time.Now().UTC(),
	})

	return updated, nil
}
