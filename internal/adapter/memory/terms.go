// Package memory implements the repositories on process memory. Data lives
// for the lifetime of the process.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// TermRepo keeps dictionary terms in display order: fixture terms in file
// order, newly created terms in front (most recent first).
type TermRepo struct {
	mu     sync.RWMutex
	terms  []domain.Term
	nextID int64
}

// NewTermRepo creates an empty term repository.
func NewTermRepo() *TermRepo {
	return &TermRepo{nextID: 1}
}

// List returns copies of the terms matching the filter, in display order.
// Returns an empty slice (not nil) when nothing matches.
func (r *TermRepo) List(_ context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	result := make([]domain.Term, 0, len(r.terms))
	for _, t := range r.terms {
		if filter.HasCategory() && t.Category != filter.Category {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Term), search) &&
			!strings.Contains(strings.ToLower(t.Definition), search) {
			continue
		}
		result = append(result, clone(t))
	}
	return result, nil
}

// GetByID returns a term or domain.ErrNotFound.
func (r *TermRepo) GetByID(_ context.Context, id int64) (*domain.Term, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}
	t := clone(r.terms[idx])
	return &t, nil
}

// Create assigns the next ID and inserts the term at the front.
func (r *TermRepo) Create(_ context.Context, term *domain.Term) (*domain.Term, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := clone(*term)
	t.ID = r.nextID
	r.nextID++

	r.terms = slices.Insert(r.terms, 0, t)

	out := clone(t)
	return &out, nil
}

// Update merges the patch into an existing term.
func (r *TermRepo) Update(_ context.Context, id int64, patch domain.TermPatch) (*domain.Term, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}
	patch.Apply(&r.terms[idx])

	out := clone(r.terms[idx])
	return &out, nil
}

// Delete removes a term or returns domain.ErrNotFound.
func (r *TermRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("term %d: %w", id, domain.ErrNotFound)
	}
	r.terms = slices.Delete(r.terms, idx, idx+1)
	return nil
}

// Count returns the number of stored terms.
func (r *TermRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.terms), nil
}

// Import appends terms at the end, keeping their IDs. Nothing is stored if
// any ID already exists.
func (r *TermRepo) Import(_ context.Context, terms []domain.Term) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range terms {
		if r.indexOf(t.ID) >= 0 {
			return 0, fmt.Errorf("term %d: %w", t.ID, domain.ErrAlreadyExists)
		}
	}

	for _, t := range terms {
		r.terms = append(r.terms, clone(t))
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return len(terms), nil
}

func (r *TermRepo) indexOf(id int64) int {
	return slices.IndexFunc(r.terms, func(t domain.Term) bool { return t.ID == id })
}

func clone(t domain.Term) domain.Term {
	if t.Examples == nil {
		t.Examples = []string{}
	} else {
		t.Examples = slices.Clone(t.Examples)
	}
	return t
}
