package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one entry of the dashboard's recent-activity feed.
type Activity struct {
	ID        uuid.UUID
	Kind      ActivityKind
	Message   string
	Severity  *Severity
	CreatedAt time.Time
}
