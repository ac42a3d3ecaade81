package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

func logN(t *testing.T, l *ActivityLog, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, l.Log(context.Background(), domain.Activity{Message: fmt.Sprintf("event %d", i)}))
	}
}

func messages(entries []domain.Activity) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestActivityLog_NewestFirst(t *testing.T) {
	t.Parallel()

	l := NewActivityLog(5)
	logN(t, l, 3)

	got, err := l.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"event 2", "event 1", "event 0"}, messages(got))
}

func TestActivityLog_DropsOldest(t *testing.T) {
	t.Parallel()

	l := NewActivityLog(3)
	logN(t, l, 5)

	got, err := l.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"event 4", "event 3", "event 2"}, messages(got))
}

func TestActivityLog_Limit(t *testing.T) {
	t.Parallel()

	l := NewActivityLog(10)
	logN(t, l, 4)

	got, err := l.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"event 3", "event 2"}, messages(got))
}

func TestActivityLog_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewActivityLog(3).Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSettingsStore(t *testing.T) {
	t.Parallel()

	defaults := domain.Settings{Mode: domain.ModerationModeStrict, ConfidenceThreshold: 85}
	s := NewSettingsStore(defaults)
	ctx := context.Background()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults, got)

	updated := defaults
	updated.Mode = domain.ModerationModeCasual
	require.NoError(t, s.Save(ctx, updated))

	got, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModerationModeCasual, got.Mode)
}
