package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

type dictionaryStatsFunc func(ctx context.Context) (*dictionary.Stats, error)

func (f dictionaryStatsFunc) Stats(ctx context.Context) (*dictionary.Stats, error) { return f(ctx) }

type countersFunc func() moderation.Counters

func (f countersFunc) Counters() moderation.Counters { return f() }

type reviewCounterFunc func(ctx context.Context) (domain.ReviewCounts, error)

func (f reviewCounterFunc) Counts(ctx context.Context) (domain.ReviewCounts, error) { return f(ctx) }

type activityFeedFunc func(ctx context.Context, limit int) ([]domain.Activity, error)

func (f activityFeedFunc) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return f(ctx, limit)
}

func okStats() dictionaryStatsFunc {
	return func(ctx context.Context) (*dictionary.Stats, error) {
		return &dictionary.Stats{
			Total:      12,
			Active:     9,
			ByCategory: map[domain.Category]int{domain.CategoryHarmful: 4, domain.CategoryNeutral: 8},
			BySeverity: map[domain.Severity]int{domain.SeverityHigh: 4, domain.SeverityLow: 8},
		}, nil
	}
}

func okCounts() reviewCounterFunc {
	return func(ctx context.Context) (domain.ReviewCounts, error) {
		return domain.ReviewCounts{
			Total: 5,
			ByStatus: map[domain.ReviewStatus]int{
				domain.ReviewStatusPending:     3,
				domain.ReviewStatusUnderReview: 1,
				domain.ReviewStatusApproved:    1,
			},
			BySeverity: map[domain.Severity]int{domain.SeverityHigh: 2, domain.SeverityMedium: 3},
		}, nil
	}
}

func TestOverview(t *testing.T) {
	t.Parallel()

	var gotLimit int
	feed := activityFeedFunc(func(ctx context.Context, limit int) ([]domain.Activity, error) {
		gotLimit = limit
		return []domain.Activity{{ID: uuid.New(), Kind: domain.ActivityTermAdded, CreatedAt: time.Now()}}, nil
	})
	counters := countersFunc(func() moderation.Counters {
		return moderation.Counters{Processed: 8, Flagged: 2}
	})

	svc := NewService(slog.Default(), okStats(), counters, okCounts(), feed, 10)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, int64(8), got.Processed)
	assert.Equal(t, int64(2), got.Flagged)
	assert.InDelta(t, 0.25, got.FlaggedRate, 1e-9)
	assert.Equal(t, 3, got.PendingReviews)
	assert.Equal(t, 1, got.UnderReview)
	assert.Equal(t, 12, got.DictionarySize)
	assert.Equal(t, 9, got.ActiveTerms)
	assert.Equal(t, 4, got.TermsByCategory[domain.CategoryHarmful])
	assert.Equal(t, 2, got.QueueBySeverity[domain.SeverityHigh])
	assert.Len(t, got.RecentActivity, 1)
}

func TestOverview_NothingProcessed(t *testing.T) {
	t.Parallel()

	emptyCounts := reviewCounterFunc(func(ctx context.Context) (domain.ReviewCounts, error) {
		return domain.ReviewCounts{}, nil
	})
	emptyFeed := activityFeedFunc(func(ctx context.Context, limit int) ([]domain.Activity, error) {
		return nil, nil
	})
	counters := countersFunc(func() moderation.Counters { return moderation.Counters{} })

	svc := NewService(slog.Default(), okStats(), counters, emptyCounts, emptyFeed, 10)

	got, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, got.FlaggedRate)
	assert.NotNil(t, got.QueueBySeverity)
	assert.NotNil(t, got.RecentActivity)
}

func TestOverview_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	failingStats := dictionaryStatsFunc(func(ctx context.Context) (*dictionary.Stats, error) {
		return nil, boom
	})
	feed := activityFeedFunc(func(ctx context.Context, limit int) ([]domain.Activity, error) { return nil, nil })
	counters := countersFunc(func() moderation.Counters { return moderation.Counters{} })

	svc := NewService(slog.Default(), failingStats, counters, okCounts(), feed, 10)

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, boom)
}
