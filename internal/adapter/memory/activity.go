package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// ActivityLog is a bounded ring of recent activity. The oldest entry is
// dropped once the limit is reached.
type ActivityLog struct {
	mu      sync.Mutex
	entries []domain.Activity
	next    int
	full    bool
}

// NewActivityLog creates a log holding at most limit entries.
func NewActivityLog(limit int) *ActivityLog {
	if limit < 1 {
		limit = 1
	}
	return &ActivityLog{entries: make([]domain.Activity, limit)}
}

func (l *ActivityLog) Log(_ context.Context, a domain.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = a
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (l *ActivityLog) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	size := l.next
	if l.full {
		size = len(l.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	out := make([]domain.Activity, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (l.next - i + len(l.entries)) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out, nil
}
