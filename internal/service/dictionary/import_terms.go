package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Seed
// ---------------------------------------------------------------------------

// Seed loads fixture terms into an empty store without transforming them:
// IDs, dates, statuses and order are preserved. A non-empty store is left
// untouched and Seed reports zero imported terms.
func (s *Service) Seed(ctx context.Context, seeds []domain.SeedTerm) (int, error) {
	count, err := s.terms.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count terms: %w", err)
	}
	if count > 0 {
		s.log.InfoContext(ctx, "dictionary already populated, skipping seed", slog.Int("terms", count))
		return 0, nil
	}

	return s.Import(ctx, seeds)
}

// Import appends fixture terms after validating them. Duplicate IDs within
// the batch or against the store fail the whole import.
func (s *Service) Import(ctx context.Context, seeds []domain.SeedTerm) (int, error) {
	if err := validateSeeds(seeds); err != nil {
		return 0, err
	}

	terms := make([]domain.Term, len(seeds))
	for i, seed := range seeds {
		terms[i] = seed.ToTerm()
	}

	n, err := s.terms.Import(ctx, terms)
	if err != nil {
		return 0, fmt.Errorf("import terms: %w", err)
	}

	s.log.InfoContext(ctx, "dictionary imported", slog.Int("terms", n))
	return n, nil
}

func validateSeeds(seeds []domain.SeedTerm) error {
	var errs []domain.FieldError
	seen := make(map[int64]struct{}, len(seeds))

	for idx, seed := range seeds {
		field := fmt.Sprintf("terms[%d]", idx)
		if seed.ID <= 0 {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "must be positive"})
		} else if _, dup := seen[seed.ID]; dup {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "duplicate"})
		}
		seen[seed.ID] = struct{}{}

		errs = appendTextErrors(errs, field+".term", seed.Term, maxTermLen)
		errs = appendTextErrors(errs, field+".definition", seed.Definition, maxDefinitionLen)
		if !seed.Severity.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".severity", Message: "invalid value"})
		}
		if !seed.Category.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".category", Message: "invalid value"})
		}
		if !seed.Status.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".status", Message: "invalid value"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
