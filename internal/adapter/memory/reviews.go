package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ReviewRepo holds the flagged-content queue.
type ReviewRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]domain.ReviewItem
}

// NewReviewRepo creates an empty review queue.
func NewReviewRepo() *ReviewRepo {
	return &ReviewRepo{items: make(map[uuid.UUID]domain.ReviewItem)}
}

func (r *ReviewRepo) Create(_ context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return nil, fmt.Errorf("review item %s: %w", item.ID, domain.ErrAlreadyExists)
	}
	stored := cloneItem(*item)
	r.items[item.ID] = stored

	out := cloneItem(stored)
	return &out, nil
}

func (r *ReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("review item %s: %w", id, domain.ErrNotFound)
	}
	out := cloneItem(item)
	return &out, nil
}

// List filters and sorts the queue. Date sort is newest first; severity sort
// is high first, then newest first.
func (r *ReviewRepo) List(_ context.Context, filter domain.ReviewFilter) ([]domain.ReviewItem, error) {
	r.mu.RLock()
	result := make([]domain.ReviewItem, 0, len(r.items))
	for _, item := range r.items {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && item.Severity != filter.Severity {
			continue
		}
		result = append(result, cloneItem(item))
	}
	r.mu.RUnlock()

	slices.SortFunc(result, func(a, b domain.ReviewItem) int {
		if filter.Sort == domain.ReviewSortSeverity {
			if c := cmp.Compare(b.Severity.Rank(), a.Severity.Rank()); c != 0 {
				return c
			}
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return result, nil
}

// UpdateStatus moves an item to status when its current status is one of
// from, and returns domain.ErrConflict otherwise. The check and the write
// happen under one lock.
func (r *ReviewRepo) UpdateStatus(_ context.Context, id uuid.UUID, from []domain.ReviewStatus, status domain.ReviewStatus, at time.Time) (*domain.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("review item %s: %w", id, domain.ErrNotFound)
	}
	if !slices.Contains(from, item.Status) {
		return nil, fmt.Errorf("review item %s is %s, cannot move to %s: %w", id, item.Status, status, domain.ErrConflict)
	}
	item.Status = status
	item.UpdatedAt = at
	r.items[id] = item

	out := cloneItem(item)
	return &out, nil
}

// Counts aggregates by status; BySeverity only counts items still open.
func (r *ReviewRepo) Counts(_ context.Context) (domain.ReviewCounts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := domain.ReviewCounts{
		Total:      len(r.items),
		ByStatus:   make(map[domain.ReviewStatus]int),
		BySeverity: make(map[domain.Severity]int),
	}
	for _, item := range r.items {
		counts.ByStatus[item.Status]++
		if item.Status.IsOpen() {
			counts.BySeverity[item.Severity]++
		}
	}
	return counts, nil
}

func cloneItem(item domain.ReviewItem) domain.ReviewItem {
	item.FlaggedTerms = slices.Clone(item.FlaggedTerms)
	return item
}
