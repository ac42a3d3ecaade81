package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ListInput holds the parameters for listing the queue.
type ListInput struct {
	Status   domain.ReviewStatus
	Severity domain.Severity
	Sort     domain.ReviewSort
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value (allowed: pending, under_review, approved, rejected)"})
	}
	if i.Severity != "" && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "invalid value (allowed: low, medium, high)"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "invalid value (allowed: date, severity)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Enqueue stores a flagged item as pending and records it in the activity feed.
func (s *Service) Enqueue(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := s.now()
	item.Status = domain.ReviewStatusPending
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := s.reviews.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create review item: %w", err)
	}

	s.record(ctx, domain.ActivityContentFlagged,
		fmt.Sprintf("Flagged content from %s queued for review", created.Platform),
		created.Severity,
	)
	return created, nil
}

// List returns queue items matching the filter. Items are sorted newest
// first, or by severity (high first) then date when requested.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.ReviewItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sort := input.Sort
	if sort == "" {
		sort = domain.ReviewSortDate
	}

	items, err := s.reviews.List(ctx, domain.ReviewFilter{
		Status:   input.Status,
		Severity: input.Severity,
		Sort:     sort,
	})
	if err != nil {
		return nil, fmt.Errorf("list review items: %w", err)
	}
	return items, nil
}

// Get returns a single queue item.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.reviews.GetByID(ctx, id)
}

// Counts aggregates the queue by status and severity.
func (s *Service) Counts(ctx context.Context) (domain.ReviewCounts, error) {
	counts, err := s.reviews.Counts(ctx)
	if err != nil {
		return domain.ReviewCounts{}, fmt.Errorf("count review items: %w", err)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

// Approve marks an open item as approved (the content is allowed).
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.transition(ctx, id, domain.ReviewStatusApproved)
}

// Reject marks an open item as rejected (the content is removed).
func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.transition(ctx, id, domain.ReviewStatusRejected)
}

// Escalate moves a pending item under review.
func (s *Service) Escalate(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error) {
	return s.transition(ctx, id, domain.ReviewStatusUnderReview)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to domain.ReviewStatus) (*domain.ReviewItem, error) {
	updated, err := s.reviews.UpdateStatus(ctx, id, sourceStatuses(to), to, s.now())
	if err != nil {
		return nil, fmt.Errorf("update review status: %w", err)
	}

	s.log.InfoContext(ctx, "review item updated",
		slog.String("review_id", id.String()),
		slog.String("to", to.String()),
	)

	kind, verb := activityFor(to)
	s.record(ctx, kind, fmt.Sprintf("Content from %s %s", updated.Platform, verb), updated.Severity)

	return updated, nil
}

// sourceStatuses lists the statuses an item may leave for to.
func sourceStatuses(to domain.ReviewStatus) []domain.ReviewStatus {
	switch to {
	case domain.ReviewStatusApproved, domain.ReviewStatusRejected:
		return []domain.ReviewStatus{domain.ReviewStatusPending, domain.ReviewStatusUnderReview}
	case domain.ReviewStatusUnderReview:
		return []domain.ReviewStatus{domain.ReviewStatusPending}
	}
	return nil
}

func activityFor(status domain.ReviewStatus) (domain.ActivityKind, string) {
	switch status {
	case domain.ReviewStatusApproved:
		return domain.ActivityReviewApproved, "approved by moderator"
	case domain.ReviewStatusRejected:
		return domain.ActivityReviewRejected, "rejected and removed"
	default:
		return domain.ActivityReviewEscalated, "escalated for review"
	}
}
