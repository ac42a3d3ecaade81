package dictionary

import (
	"strings"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

const (
	maxTermLen       = 200
	maxDefinitionLen = 2000
	maxExamples      = 20
	maxExampleLen    = 500
	maxSearchLen     = 200
)

// AddTermInput holds the parameters for adding a dictionary term.
// Examples is the raw comma-separated string entered by the operator.
type AddTermInput struct {
	Term       string
	Severity   domain.Severity
	Category   domain.Category
	Definition string
	Examples   string
}

// Validate checks all fields and collects all errors.
func (i *AddTermInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTextErrors(errs, "term", i.Term, maxTermLen)
	errs = appendTextErrors(errs, "definition", i.Definition, maxDefinitionLen)

	if i.Severity != "" && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "invalid value (allowed: low, medium, high)"})
	}
	if i.Category != "" && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	errs = appendExampleErrors(errs, domain.ParseExamples(i.Examples))

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTermInput holds a partial update of a term. Nil fields are untouched.
// Examples may be given either as a raw comma-separated string or as a list,
// not both.
type UpdateTermInput struct {
	ID          int64
	Term        *string
	Severity    *domain.Severity
	Category    *domain.Category
	Definition  *string
	Examples    *string
	ExampleList []string
	Status      *domain.TermStatus
}

// Validate checks all fields and collects all errors.
func (i *UpdateTermInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Term != nil {
		errs = appendTextErrors(errs, "term", *i.Term, maxTermLen)
	}
	if i.Definition != nil {
		errs = appendTextErrors(errs, "definition", *i.Definition, maxDefinitionLen)
	}
	if i.Severity != nil && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "invalid value (allowed: low, medium, high)"})
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value (allowed: active, review, inactive)"})
	}
	if i.Examples != nil && i.ExampleList != nil {
		errs = append(errs, domain.FieldError{Field: "examples", Message: "give either a string or a list"})
	}
	if examples := i.examples(); examples != nil {
		errs = appendExampleErrors(errs, *examples)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// examples returns the parsed examples, or nil when the input leaves them unchanged.
func (i *UpdateTermInput) examples() *[]string {
	switch {
	case i.Examples != nil:
		parsed := domain.ParseExamples(*i.Examples)
		return &parsed
	case i.ExampleList != nil:
		cleaned := make([]string, 0, len(i.ExampleList))
		for _, e := range i.ExampleList {
			if e = strings.TrimSpace(e); e != "" {
				cleaned = append(cleaned, e)
			}
		}
		return &cleaned
	}
	return nil
}

// ListInput holds the parameters for listing terms.
type ListInput struct {
	Search   string
	Category domain.Category
	Status   domain.TermStatus
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long (max 200)"})
	}
	if i.Category != "" && i.Category != domain.CategoryAll && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid value"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value (allowed: active, review, inactive)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTextErrors(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	switch {
	case strings.TrimSpace(value) == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(value) > maxLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendExampleErrors(errs []domain.FieldError, examples []string) []domain.FieldError {
	if len(examples) > maxExamples {
		return append(errs, domain.FieldError{Field: "examples", Message: "too many (max 20)"})
	}
	for _, e := range examples {
		if len(e) > maxExampleLen {
			return append(errs, domain.FieldError{Field: "examples", Message: "example too long (max 500)"})
		}
	}
	return errs
}
