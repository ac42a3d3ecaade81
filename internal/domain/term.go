package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Term is a watched dictionary entry (slang or harmful-language phrase).
type Term struct {
	ID         int64
	Term       string
	Severity   Severity
	Category   Category
	Definition string
	Examples   []string
	DateAdded  time.Time
	Status     TermStatus
}

// IsActive reports whether the term participates in classification.
func (t *Term) IsActive() bool {
	return t.Status == TermStatusActive
}

// TermPatch carries a partial update. Nil fields are left unchanged.
// ID and DateAdded are immutable and therefore absent.
type TermPatch struct {
	Term       *string
	Severity   *Severity
	Category   *Category
	Definition *string
	Examples   *[]string
	Status     *TermStatus
}

// Apply merges the patch into t.
func (p TermPatch) Apply(t *Term) {
	if p.Term != nil {
		t.Term = *p.Term
	}
	if p.Severity != nil {
		t.Severity = *p.Severity
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Definition != nil {
		t.Definition = *p.Definition
	}
	if p.Examples != nil {
		t.Examples = append([]string(nil), (*p.Examples)...)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p TermPatch) IsEmpty() bool {
	return p.Term == nil && p.Severity == nil && p.Category == nil &&
		p.Definition == nil && p.Examples == nil && p.Status == nil
}

// TermFilter selects terms for List. Zero values mean "no filter".
type TermFilter struct {
	// Search is matched case-insensitively against term OR definition.
	Search   string
	Category Category
	Status   TermStatus
}

// HasCategory reports whether the filter restricts by category.
func (f TermFilter) HasCategory() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// SeedTerm is the on-disk shape of a dictionary fixture record.
type SeedTerm struct {
	ID         int64      `json:"id"`
	Term       string     `json:"term"`
	Severity   Severity   `json:"severity"`
	Category   Category   `json:"category"`
	Definition string     `json:"definition"`
	Examples   []string   `json:"examples"`
	DateAdded  SeedDate   `json:"dateAdded"`
	Status     TermStatus `json:"status"`
}

// ToTerm converts the fixture record without transformation of its fields.
func (s SeedTerm) ToTerm() Term {
	examples := s.Examples
	if examples == nil {
		examples = []string{}
	}
	return Term{
		ID:         s.ID,
		Term:       s.Term,
		Severity:   s.Severity,
		Category:   s.Category,
		Definition: s.Definition,
		Examples:   examples,
		DateAdded:  time.Time(s.DateAdded),
		Status:     s.Status,
	}
}

// SeedDate accepts both "2006-01-02" and RFC 3339 timestamps.
type SeedDate time.Time

func (d *SeedDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("seed date: %w", err)
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = SeedDate(t.UTC())
			return nil
		}
	}
	return fmt.Errorf("seed date: unsupported format %q", s)
}

func (d SeedDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(time.RFC3339))
}
