package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewItem is a piece of flagged content awaiting (or past) moderator review.
type ReviewItem struct {
	ID           uuid.UUID
	Content      string
	Platform     string
	Severity     Severity
	Confidence   float64
	FlaggedTerms []string
	Category     string
	Status       ReviewStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReviewSort is the ordering applied to review queue listings.
type ReviewSort string

const (
	ReviewSortDate     ReviewSort = "date"
	ReviewSortSeverity ReviewSort = "severity"
)

func (s ReviewSort) IsValid() bool {
	return s == ReviewSortDate || s == ReviewSortSeverity
}

// ReviewFilter selects queue items. Zero values mean "no filter".
type ReviewFilter struct {
	Status   ReviewStatus
	Severity Severity
	Sort     ReviewSort
}

// ReviewCounts aggregates the queue by status and severity.
type ReviewCounts struct {
	Total      int
	ByStatus   map[ReviewStatus]int
	BySeverity map[Severity]int
}
