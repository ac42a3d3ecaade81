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
// AddTerm
// ---------------------------------------------------------------------------

// AddTerm creates a new active term. The store assigns the ID; dateAdded is
// set to now and never changes afterwards.
func (s *Service) AddTerm(ctx context.Context, input AddTermInput) (*domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	severity := input.Severity
	if severity == "" {
		severity = domain.SeverityMedium
	}
	category := input.Category
	if category == "" {
		category = domain.CategoryNeutral
	}

	term := &domain.Term{
		Term:       strings.TrimSpace(input.Term),
		Severity:   severity,
		Category:   category,
		Definition: strings.TrimSpace(input.Definition),
		Examples:   domain.ParseExamples(input.Examples),
		DateAdded:  time.Now().UTC(),
		Status:     domain.TermStatusActive,
	}

	created, err := s.terms.Create(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term added",
		slog.Int64("term_id", created.ID),
		slog.String("category", created.Category.String()),
	)
	s.record(ctx, domain.Activity{
		ID:        uuid.New(),
		Kind:      domain.ActivityTermAdded,
		Message:   fmt.Sprintf("Slang dictionary updated with new term %q", created.Term),
		Severity:  severityPtr(created.Severity),
		CreatedAt: time.Now().UTC(),
	})

	return created, nil
}
