package dictionary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
	Create(ctx context.Context, term *domain.Term) (*domain.Term, error)
	Update(ctx context.Context, id int64, patch domain.TermPatch) (*domain.Term, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	Import(ctx context.Context, terms []domain.Term) (int, error)
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the term dictionary business logic.
type Service struct {
	log      *slog.Logger
	terms    termRepo
	activity activityLogger
	cfg      config.DictionaryConfig
}

// NewService creates a new Dictionary service.
func NewService(
	logger *slog.Logger,
	terms termRepo,
	activity activityLogger,
	cfg config.DictionaryConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		terms:    terms,
		activity: activity,
		cfg:      cfg,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// record appends to the activity feed. Failures are logged, never returned:
// the dictionary mutation has already happened.
func (s *Service) record(ctx context.Context, a domain.Activity) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Log(ctx, a); err != nil {
		s.log.ErrorContext(ctx, "record activity",
			slog.String("kind", a.Kind.String()),
			slog.String("error", err.Error()),
		)
	}
}

func severityPtr(s domain.Severity) *domain.Severity {
	return &s
}
