package dictionary

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// ListTerms
// ---------------------------------------------------------------------------

// ListTerms returns the terms matching the filter in store order
// (seed order, newest additions first). Search is lower-cased and trimmed
// but inner whitespace is kept, so a term is always found by its own text.
func (s *Service) ListTerms(ctx context.Context, input ListInput) ([]domain.Term, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TermFilter{
		Search:   domain.NormalizeSearch(input.Search),
		Category: input.Category,
		Status:   input.Status,
	}

	terms, err := s.terms.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// ---------------------------------------------------------------------------
// GetTerm
// ---------------------------------------------------------------------------

// GetTerm returns a single term by ID.
func (s *Service) GetTerm(ctx context.Context, id int64) (*domain.Term, error) {
	return s.terms.GetByID(ctx, id)
}

// ---------------------------------------------------------------------------
// ActiveTerms
// ---------------------------------------------------------------------------

// ActiveTerms returns the terms eligible for classification, in store order.
// Unless the dictionary is configured to match every status, only active
// terms are returned.
func (s *Service) ActiveTerms(ctx context.Context) ([]domain.Term, error) {
	filter := domain.TermFilter{}
	if s.cfg.ActiveOnly {
		filter.Status = domain.TermStatusActive
	}

	terms, err := s.terms.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list active terms: %w", err)
	}
	return terms, nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

// Stats summarises the dictionary for the dashboard.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	terms, err := s.terms.List(ctx, domain.TermFilter{})
	if err != nil {
		return nil, fmt.Errorf("dictionary stats: %w", err)
	}

	stats := &Stats{
		Total:      len(terms),
		ByCategory: make(map[domain.Category]int),
		BySeverity: make(map[domain.Severity]int),
	}
	for _, t := range terms {
		if t.IsActive() {
			stats.Active++
		}
		stats.ByCategory[t.Category]++
		stats.BySeverity[t.Severity]++
	}
	return stats, nil
}

// Stats aggregates the dictionary by status, category and severity.
type Stats struct {
	Total      int
	Active     int
	ByCategory map[domain.Category]int
	BySeverity map[domain.Severity]int
}

// SortedCategories returns the categories present in the stats, sorted by name.
func (st *Stats) SortedCategories() []domain.Category {
	cats := make([]domain.Category, 0, len(st.ByCategory))
	for c := range st.ByCategory {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}
