package moderation

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

const (
	defaultPlatform = "api"
	maxPlatformLen  = 50
)

// textError reports why text cannot be classified, or nil when it can.
func textError(text string, maxLen int) *domain.FieldError {
	if strings.TrimSpace(text) == "" {
		return &domain.FieldError{Field: "text", Message: "required"}
	}
	if maxLen > 0 && utf8.RuneCountInString(text) > maxLen {
		return &domain.FieldError{Field: "text", Message: "too long"}
	}
	return nil
}

func validateText(text string, maxLen int) error {
	if fe := textError(text, maxLen); fe != nil {
		return domain.NewValidationError(fe.Field, fe.Message)
	}
	return nil
}

// ModerateInput is a piece of user content submitted for moderation.
type ModerateInput struct {
	Text     string
	Platform string
}

// Validate checks all fields and collects all errors.
func (i *ModerateInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if fe := textError(i.Text, maxLen); fe != nil {
		errs = append(errs, *fe)
	}
	if len(i.Platform) > maxPlatformLen {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "too long (max 50)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ModerateResult is the verdict plus the review item created for it, if any.
type ModerateResult struct {
	Verdict    domain.Verdict
	ReviewItem *domain.ReviewItem
}
