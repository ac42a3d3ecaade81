// Package review manages the queue of flagged content awaiting a moderator.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reviewRepo interface {
	Create(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.ReviewItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from []domain.ReviewStatus, to domain.ReviewStatus, at time.Time) (*domain.ReviewItem, error)
	Counts(ctx context.Context) (domain.ReviewCounts, error)
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review queue business logic.
type Service struct {
	log      *slog.Logger
	reviews  reviewRepo
	activity activityLogger
	now      func() time.Time
}

// NewService creates a new Review service.
func NewService(logger *slog.Logger, reviews reviewRepo, activity activityLogger) *Service {
	return &Service{
		log:      logger.With("service", "review"),
		reviews:  reviews,
		activity: activity,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) record(ctx context.Context, kind domain.ActivityKind, message string, severity domain.Severity) {
	err := s.activity.Log(ctx, domain.Activity{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		Severity:  &severity,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "record activity",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
	}
}
