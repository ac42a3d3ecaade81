package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services, repositories and transports.
// Transports map them to status codes; wrap them with fmt.Errorf("...: %w").
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	// ErrConflict marks a state transition the current state does not allow,
	// such as approving an already rejected review item.
	ErrConflict = errors.New("conflict")
)

// FieldError is a problem with one input field. Field uses the wire name
// ("term", "examples[2]", "terms[0].id").
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field problem found in one input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Errors []FieldError
}

// Error lists each field problem: "validation: term: required; severity: invalid value".
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError reports a single invalid field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors wraps collected field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
