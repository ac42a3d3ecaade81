// Package dashboard assembles the moderation overview from the other services.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryStats interface {
	Stats(ctx context.Context) (*dictionary.Stats, error)
}

type moderationCounters interface {
	Counters() moderation.Counters
}

type reviewCounter interface {
	Counts(ctx context.Context) (domain.ReviewCounts, error)
}

type activityFeed interface {
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service builds read-only overviews. It owns no state.
type Service struct {
	log            *slog.Logger
	dictionary     dictionaryStats
	moderation     moderationCounters
	reviews        reviewCounter
	activity       activityFeed
	recentActivity int
}

// NewService creates a new Dashboard service. recentActivity caps the number
// of feed entries included in the overview.
func NewService(
	logger *slog.Logger,
	dict dictionaryStats,
	mod moderationCounters,
	reviews reviewCounter,
	activity activityFeed,
	recentActivity int,
) *Service {
	return &Service{
		log:            logger.With("service", "dashboard"),
		dictionary:     dict,
		moderation:     mod,
		reviews:        reviews,
		activity:       activity,
		recentActivity: recentActivity,
	}
}

// Overview is the dashboard summary.
type Overview struct {
	Processed       int64
	Flagged         int64
	FlaggedRate     float64
	PendingReviews  int
	UnderReview     int
	DictionarySize  int
	ActiveTerms     int
	TermsByCategory map[domain.Category]int
	TermsBySeverity map[domain.Severity]int
	QueueBySeverity map[domain.Severity]int
	RecentActivity  []domain.Activity
}

// Overview gathers dictionary, queue and activity data concurrently.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var (
		stats    *dictionary.Stats
		counts   domain.ReviewCounts
		activity []domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.dictionary.Stats(gctx)
		if err != nil {
			return fmt.Errorf("dictionary stats: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		counts, err = s.reviews.Counts(gctx)
		if err != nil {
			return fmt.Errorf("review counts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		activity, err = s.activity.Recent(gctx, s.recentActivity)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := s.moderation.Counters()
	overview := &Overview{
		Processed:       c.Processed,
		Flagged:         c.Flagged,
		PendingReviews:  counts.ByStatus[domain.ReviewStatusPending],
		UnderReview:     counts.ByStatus[domain.ReviewStatusUnderReview],
		DictionarySize:  stats.Total,
		ActiveTerms:     stats.Active,
		TermsByCategory: stats.ByCategory,
		TermsBySeverity: stats.BySeverity,
		QueueBySeverity: counts.BySeverity,
		RecentActivity:  activity,
	}
	if c.Processed > 0 {
		overview.FlaggedRate = float64(c.Flagged) / float64(c.Processed)
	}
	if overview.QueueBySeverity == nil {
		overview.QueueBySeverity = map[domain.Severity]int{}
	}
	if overview.RecentActivity == nil {
		overview.RecentActivity = []domain.Activity{}
	}

	return overview, nil
}
