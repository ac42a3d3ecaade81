// Package moderation runs submitted text through the rule-based classifier
// and feeds flagged content into the review queue.
package moderation

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termSource interface {
	ActiveTerms(ctx context.Context) ([]domain.Term, error)
}

type settingsProvider interface {
	Get(ctx context.Context) (domain.Settings, error)
}

type reviewQueue interface {
	Enqueue(ctx context.Context, item *domain.ReviewItem) (*domain.ReviewItem, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service classifies content. It holds no mutable state besides the
// processed/flagged counters.
type Service struct {
	log      *slog.Logger
	terms    termSource
	settings settingsProvider
	reviews  reviewQueue
	cfg      config.ModerationConfig

	processed atomic.Int64
	flagged   atomic.Int64
}

// NewService creates a new Moderation service.
func NewService(
	logger *slog.Logger,
	terms termSource,
	settings settingsProvider,
	reviews reviewQueue,
	cfg config.ModerationConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "moderation"),
		terms:    terms,
		settings: settings,
		reviews:  reviews,
		cfg:      cfg,
	}
}

// Counters is a snapshot of the classification totals since start.
type Counters struct {
	Processed int64
	Flagged   int64
}

// Counters returns the number of dictionary-mode classifications performed
// and how many of them were flagged.
func (s *Service) Counters() Counters {
	return Counters{
		Processed: s.processed.Load(),
		Flagged:   s.flagged.Load(),
	}
}

func (s *Service) count(v domain.Verdict) {
	s.processed.Add(1)
	if v.IsFlagged {
		s.flagged.Add(1)
	}
}
