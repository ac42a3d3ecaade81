package domain

// Severity is the coarse risk tier of a dictionary term or a verdict.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Rank orders severities: low < medium < high. Unknown values rank below low.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	}
	return 0
}

// TermStatus governs whether a dictionary term participates in classification.
type TermStatus string

const (
	TermStatusActive   TermStatus = "active"
	TermStatusReview   TermStatus = "review"
	TermStatusInactive TermStatus = "inactive"
)

func (s TermStatus) String() string { return string(s) }

func (s TermStatus) IsValid() bool {
	switch s {
	case TermStatusActive, TermStatusReview, TermStatusInactive:
		return true
	}
	return false
}

// Category labels a dictionary term.
type Category string

const (
	CategoryHarmful     Category = "harmful"
	CategorySuspicious  Category = "suspicious"
	CategoryDismissive  Category = "dismissive"
	CategoryPositive    Category = "positive"
	CategorySocialMedia Category = "social_media"
	CategoryNeutral     Category = "neutral"

	// CategoryAll is the list-filter sentinel meaning "no category filter".
	CategoryAll Category = "all"
)

func (c Category) String() string { return string(c) }

// IsValid reports whether c is one of the known term categories.
// CategoryAll is a filter sentinel and is not a valid term category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHarmful, CategorySuspicious, CategoryDismissive,
		CategoryPositive, CategorySocialMedia, CategoryNeutral:
		return true
	}
	return false
}

// Categories returns all known term categories in display order.
func Categories() []Category {
	return []Category{
		CategoryHarmful, CategorySuspicious, CategoryDismissive,
		CategoryPositive, CategorySocialMedia, CategoryNeutral,
	}
}

// ReviewStatus is the state of a flagged item in the review queue.
type ReviewStatus string

const (
	ReviewStatusPending     ReviewStatus = "pending"
	ReviewStatusUnderReview ReviewStatus = "under_review"
	ReviewStatusApproved    ReviewStatus = "approved"
	ReviewStatusRejected    ReviewStatus = "rejected"
)

func (s ReviewStatus) String() string { return string(s) }

func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusUnderReview, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// IsOpen reports whether the item still awaits a moderator decision.
func (s ReviewStatus) IsOpen() bool {
	return s == ReviewStatusPending || s == ReviewStatusUnderReview
}

// ModerationMode controls how aggressively the dictionary flags content.
type ModerationMode string

const (
	// ModerationModeStrict matches every eligible term, including low severity ones.
	ModerationModeStrict ModerationMode = "strict"
	// ModerationModeCasual ignores low severity terms.
	ModerationModeCasual ModerationMode = "casual"
)

func (m ModerationMode) String() string { return string(m) }

func (m ModerationMode) IsValid() bool {
	switch m {
	case ModerationModeStrict, ModerationModeCasual:
		return true
	}
	return false
}

// ActivityKind identifies the event recorded in the activity feed.
type ActivityKind string

const (
	ActivityTermAdded       ActivityKind = "term_added"
	ActivityTermUpdated     ActivityKind = "term_updated"
	ActivityTermRemoved     ActivityKind = "term_removed"
	ActivityContentFlagged  ActivityKind = "content_flagged"
	ActivityReviewApproved  ActivityKind = "review_approved"
	ActivityReviewRejected  ActivityKind = "review_rejected"
	ActivityReviewEscalated ActivityKind = "review_escalated"
	ActivitySettingsUpdated ActivityKind = "settings_updated"
)

func (k ActivityKind) String() string { return string(k) }
