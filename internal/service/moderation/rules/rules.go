// Package rules implements the keyword-matching text classifier.
// Every function is pure: no I/O, no retained state between calls.
package rules

import (
	"math"
	"strings"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// Confidence heuristic parameters. This is a saturating score, not a probability.
const (
	BaseConfidence = 0.6
	StepConfidence = 0.15
	MaxConfidence  = 0.95
	SafeConfidence = 0.05
)

// DefaultKeywords is the built-in list used by the standalone demo analyzer.
var DefaultKeywords = []string{
	"hate", "kill", "die", "stupid", "idiot", "loser", "trash", "garbage",
	"attack", "destroy", "hurt", "pain", "violence", "threat",
}

// Candidate is a term eligible for matching, with the dictionary metadata
// needed to attribute a category to the verdict.
type Candidate struct {
	Text     string
	Severity domain.Severity
	Category domain.Category
}

// ClassifyKeywords classifies text against a plain keyword list. The verdict
// category is the fixed harmful_language / safe_content pair.
func ClassifyKeywords(text string, keywords []string) domain.Verdict {
	candidates := make([]Candidate, len(keywords))
	for i, k := range keywords {
		candidates[i] = Candidate{Text: k}
	}

	matched := scan(text, candidates)
	v := newVerdict(candidates, matched)
	if v.IsFlagged {
		v.Category = domain.VerdictCategoryHarmful
	}
	return v
}

// Classify classifies text against dictionary candidates. When flagged, the
// verdict category is that of the most severe matched candidate; ties go to
// the earliest candidate. A candidate without a category reports harmful_language.
func Classify(text string, candidates []Candidate) domain.Verdict {
	matched := scan(text, candidates)
	v := newVerdict(candidates, matched)
	if !v.IsFlagged {
		return v
	}

	top := candidates[matched[0]]
	for _, idx := range matched[1:] {
		if candidates[idx].Severity.Rank() > top.Severity.Rank() {
			top = candidates[idx]
		}
	}
	v.Category = domain.VerdictCategoryHarmful
	if top.Category != "" {
		v.Category = top.Category.String()
	}
	return v
}

// SeverityFor maps a match count to a severity tier.
func SeverityFor(n int) domain.Severity {
	switch {
	case n > 2:
		return domain.SeverityHigh
	case n > 0:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// ConfidenceFor maps a match count to a confidence score in [0, 1].
// It saturates at exactly MaxConfidence.
func ConfidenceFor(n int) float64 {
	if n <= 0 {
		return SafeConfidence
	}
	return math.Min(MaxConfidence, BaseConfidence+StepConfidence*float64(n))
}

// Explain renders the human-readable explanation for a set of matches.
func Explain(matched []string) string {
	if len(matched) == 0 {
		return "Content appears safe with no harmful language detected"
	}
	return "Content flagged due to potentially harmful language: " + strings.Join(matched, ", ")
}

// scan returns the indices of candidates contained in text, in candidate
// order. Candidates that repeat (case-insensitively) or are blank are skipped.
func scan(text string, candidates []Candidate) []int {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return nil
	}

	var matched []int
	seen := make(map[string]struct{}, len(candidates))
	for i, c := range candidates {
		needle := strings.ToLower(strings.TrimSpace(c.Text))
		if needle == "" {
			continue
		}
		if _, dup := seen[needle]; dup {
			continue
		}
		seen[needle] = struct{}{}
		if strings.Contains(lowered, needle) {
			matched = append(matched, i)
		}
	}
	return matched
}

func newVerdict(candidates []Candidate, matched []int) domain.Verdict {
	terms := make([]string, len(matched))
	for i, idx := range matched {
		terms[i] = candidates[idx].Text
	}

	n := len(terms)
	return domain.Verdict{
		IsFlagged:    n > 0,
		MatchedTerms: terms,
		Severity:     SeverityFor(n),
		Confidence:   ConfidenceFor(n),
		Category:     domain.VerdictCategorySafe,
		Explanation:  Explain(terms),
	}
}
