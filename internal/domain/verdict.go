package domain

// Verdict category sentinels used when the classifier does not report
// a dictionary category.
const (
	VerdictCategoryHarmful = "harmful_language"
	VerdictCategorySafe    = "safe_content"
)

// Verdict is the result of a single classification call.
// It is derived data and never persisted on its own.
type Verdict struct {
	IsFlagged    bool
	MatchedTerms []string
	Severity     Severity
	Confidence   float64
	Category     string
	Explanation  string
}
