package rest

import (
	"time"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/dashboard"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

type termResponse struct {
	ID         int64     `json:"id"`
	Term       string    `json:"term"`
	Severity   string    `json:"severity"`
	Category   string    `json:"category"`
	Definition string    `json:"definition"`
	Examples   []string  `json:"examples"`
	DateAdded  time.Time `json:"dateAdded"`
	Status     string    `json:"status"`
}

func toTermResponse(t *domain.Term) termResponse {
	examples := t.Examples
	if examples == nil {
		examples = []string{}
	}
	return termResponse{
		ID:         t.ID,
		Term:       t.Term,
		Severity:   t.Severity.String(),
		Category:   t.Category.String(),
		Definition: t.Definition,
		Examples:   examples,
		DateAdded:  t.DateAdded,
		Status:     t.Status.String(),
	}
}

func toTermsResponse(terms []domain.Term) []termResponse {
	out := make([]termResponse, len(terms))
	for i := range terms {
		out[i] = toTermResponse(&terms[i])
	}
	return out
}

type verdictResponse struct {
	IsFlagged    bool     `json:"isFlagged"`
	MatchedTerms []string `json:"matchedTerms"`
	Severity     string   `json:"severity"`
	Confidence   float64  `json:"confidence"`
	Category     string   `json:"category"`
	Explanation  string   `json:"explanation"`
}

func toVerdictResponse(v domain.Verdict) verdictResponse {
	matched := v.MatchedTerms
	if matched == nil {
		matched = []string{}
	}
	return verdictResponse{
		IsFlagged:    v.IsFlagged,
		MatchedTerms: matched,
		Severity:     v.Severity.String(),
		Confidence:   v.Confidence,
		Category:     v.Category,
		Explanation:  v.Explanation,
	}
}

type reviewItemResponse struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	Platform     string    `json:"platform"`
	Severity     string    `json:"severity"`
	Confidence   float64   `json:"confidence"`
	FlaggedTerms []string  `json:"flaggedTerms"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toReviewItemResponse(item *domain.ReviewItem) reviewItemResponse {
	flagged := item.FlaggedTerms
	if flagged == nil {
		flagged = []string{}
	}
	return reviewItemResponse{
		ID:           item.ID.String(),
		Content:      item.Content,
		Platform:     item.Platform,
		Severity:     item.Severity.String(),
		Confidence:   item.Confidence,
		FlaggedTerms: flagged,
		Category:     item.Category,
		Status:       item.Status.String(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

type moderateResponse struct {
	Verdict    verdictResponse     `json:"verdict"`
	ReviewItem *reviewItemResponse `json:"reviewItem,omitempty"`
}

func toModerateResponse(res *moderation.ModerateResult) moderateResponse {
	out := moderateResponse{Verdict: toVerdictResponse(res.Verdict)}
	if res.ReviewItem != nil {
		item := toReviewItemResponse(res.ReviewItem)
		out.ReviewItem = &item
	}
	return out
}

type settingsResponse struct {
	Mode                string `json:"mode"`
	AutoModeration      bool   `json:"autoModeration"`
	RealTimeProcessing  bool   `json:"realTimeProcessing"`
	Notifications       bool   `json:"notifications"`
	ConfidenceThreshold int    `json:"confidenceThreshold"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	return settingsResponse{
		Mode:                s.Mode.String(),
		AutoModeration:      s.AutoModeration,
		RealTimeProcessing:  s.RealTimeProcessing,
		Notifications:       s.Notifications,
		ConfidenceThreshold: s.ConfidenceThreshold,
	}
}

type activityResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Severity  *string   `json:"severity,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toActivityResponse(a domain.Activity) activityResponse {
	out := activityResponse{
		ID:        a.ID.String(),
		Kind:      a.Kind.String(),
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
	}
	if a.Severity != nil {
		s := a.Severity.String()
		out.Severity = &s
	}
	return out
}

type overviewResponse struct {
	Processed       int64              `json:"processed"`
	Flagged         int64              `json:"flagged"`
	FlaggedRate     float64            `json:"flaggedRate"`
	PendingReviews  int                `json:"pendingReviews"`
	UnderReview     int                `json:"underReview"`
	DictionarySize  int                `json:"dictionarySize"`
	ActiveTerms     int                `json:"activeTerms"`
	TermsByCategory map[string]int     `json:"termsByCategory"`
	TermsBySeverity map[string]int     `json:"termsBySeverity"`
	QueueBySeverity map[string]int     `json:"queueBySeverity"`
	RecentActivity  []activityResponse `json:"recentActivity"`
}

func toOverviewResponse(o *dashboard.Overview) overviewResponse {
	out := overviewResponse{
		Processed:       o.Processed,
		Flagged:         o.Flagged,
		FlaggedRate:     o.FlaggedRate,
		PendingReviews:  o.PendingReviews,
		UnderReview:     o.UnderReview,
		DictionarySize:  o.DictionarySize,
		ActiveTerms:     o.ActiveTerms,
		TermsByCategory: make(map[string]int, len(o.TermsByCategory)),
		TermsBySeverity: make(map[string]int, len(o.TermsBySeverity)),
		QueueBySeverity: make(map[string]int, len(o.QueueBySeverity)),
		RecentActivity:  make([]activityResponse, 0, len(o.RecentActivity)),
	}
	for k, v := range o.TermsByCategory {
		out.TermsByCategory[k.String()] = v
	}
	for k, v := range o.TermsBySeverity {
		out.TermsBySeverity[k.String()] = v
	}
	for k, v := range o.QueueBySeverity {
		out.QueueBySeverity[k.String()] = v
	}
	for _, a := range o.RecentActivity {
		out.RecentActivity = append(out.RecentActivity, toActivityResponse(a))
	}
	return out
}
