package domain

import "strings"

// NormalizeSearch lowercases search text and trims it at both ends. Inner
// whitespace is kept as typed since stored terms are matched verbatim.
func NormalizeSearch(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ParseExamples splits a comma-separated examples string into trimmed items.
// Blank items are dropped, so an empty string yields an empty (non-nil) slice.
func ParseExamples(raw string) []string {
	examples := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			examples = append(examples, part)
		}
	}
	return examples
}
