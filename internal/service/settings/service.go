// Package settings manages the operator-tunable moderation preferences.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/domain"
)

type settingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

type activityLogger interface {
	Log(ctx context.Context, activity domain.Activity) error
}

// Service reads and updates moderation settings.
type Service struct {
	log      *slog.Logger
	repo     settingsRepo
	activity activityLogger
}

// NewService creates a new Settings service.
func NewService(logger *slog.Logger, repo settingsRepo, activity activityLogger) *Service {
	return &Service{
		log:      logger.With("service", "settings"),
		repo:     repo,
		activity: activity,
	}
}

// Defaults builds the initial settings from configuration.
func Defaults(cfg config.ModerationConfig) domain.Settings {
	return domain.Settings{
		Mode:                domain.ModerationMode(cfg.Mode),
		AutoModeration:      cfg.AutoModeration,
		RealTimeProcessing:  cfg.RealTimeProcessing,
		Notifications:       cfg.Notifications,
		ConfidenceThreshold: cfg.ConfidenceThreshold,
	}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateInput is a partial settings update. Nil fields are untouched.
type UpdateInput struct {
	Mode                *domain.ModerationMode
	AutoModeration      *bool
	RealTimeProcessing  *bool
	Notifications       *bool
	ConfidenceThreshold *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Mode != nil && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "invalid value (allowed: strict, casual)"})
	}
	if i.ConfidenceThreshold != nil {
		v := *i.ConfidenceThreshold
		if v < domain.MinConfidenceThreshold || v > domain.MaxConfidenceThreshold {
			errs = append(errs, domain.FieldError{
				Field:   "confidenceThreshold",
				Message: fmt.Sprintf("must be between %d and %d", domain.MinConfidenceThreshold, domain.MaxConfidenceThreshold),
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Update merges the provided fields into the current settings.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Settings, error) {
	if err := input.Validate(); err != nil {
		return domain.Settings{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	if input.Mode != nil {
		current.Mode = *input.Mode
	}
	if input.AutoModeration != nil {
		current.AutoModeration = *input.AutoModeration
	}
	if input.RealTimeProcessing != nil {
		current.RealTimeProcessing = *input.RealTimeProcessing
	}
	if input.Notifications != nil {
		current.Notifications = *input.Notifications
	}
	if input.ConfidenceThreshold != nil {
		current.ConfidenceThreshold = *input.ConfidenceThreshold
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("mode", current.Mode.String()),
		slog.Bool("auto_moderation", current.AutoModeration),
		slog.Int("confidence_threshold", current.ConfidenceThreshold),
	)

	if err := s.activity.Log(ctx, domain.Activity{
		ID:        uuid.New(),
		Kind:      domain.ActivitySettingsUpdated,
		Message:   fmt.Sprintf("Moderation settings updated (%s mode, threshold %d%%)", current.Mode, current.ConfidenceThreshold),
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		s.log.ErrorContext(ctx, "record activity", slog.String("error", err.Error()))
	}

	return current, nil
}
