package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moderation-backend/internal/adapter/memory"
	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/seeder"
	"github.com/heartmarshall/moderation-backend/internal/service/dashboard"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
	"github.com/heartmarshall/moderation-backend/internal/service/review"
	"github.com/heartmarshall/moderation-backend/internal/service/settings"
)

// dashboardRecentActivity caps the feed entries embedded in the overview.
const dashboardRecentActivity = 10

// Services is the fully wired service layer shared by the server and the CLI.
type Services struct {
	Dictionary *dictionary.Service
	Moderation *moderation.Service
	Review     *review.Service
	Settings   *settings.Service
	Dashboard  *dashboard.Service

	driver  string
	storage *storage
}

// NewServices opens storage, seeds the dictionary when configured, and builds
// every service. Call Close when done.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	activity := memory.NewActivityLog(cfg.Review.ActivityLimit)

	dictSvc := dictionary.NewService(logger, st.terms, activity, cfg.Dictionary)
	settingsSvc := settings.NewService(logger, memory.NewSettingsStore(settings.Defaults(cfg.Moderation)), activity)
	reviewSvc := review.NewService(logger, memory.NewReviewRepo(), activity)
	modSvc := moderation.NewService(logger, dictSvc, settingsSvc, reviewSvc, cfg.Moderation)
	dashSvc := dashboard.NewService(logger, dictSvc, modSvc, reviewSvc, activity, dashboardRecentActivity)

	svcs := &Services{
		Dictionary: dictSvc,
		Moderation: modSvc,
		Review:     reviewSvc,
		Settings:   settingsSvc,
		Dashboard:  dashSvc,
		driver:     cfg.Storage.Driver,
		storage:    st,
	}

	if cfg.Storage.Seed {
		if err := svcs.seed(ctx, cfg.Storage.SeedPath, logger); err != nil {
			svcs.Close()
			return nil, err
		}
	}

	return svcs, nil
}

func (s *Services) seed(ctx context.Context, path string, logger *slog.Logger) error {
	seeds, err := seeder.Load(path)
	if err != nil {
		return fmt.Errorf("load seed terms: %w", err)
	}

	n, err := s.Dictionary.Seed(ctx, seeds)
	if err != nil {
		return fmt.Errorf("seed dictionary: %w", err)
	}

	if n > 0 {
		stats := seeder.Summarize(seeds)
		logger.InfoContext(ctx, "dictionary seeded",
			slog.Int("terms", n),
			slog.Int("active", stats.Active),
			slog.Int("categories", len(stats.ByCategory)),
		)
	}
	return nil
}

// Close releases the storage backend.
func (s *Services) Close() {
	s.storage.close()
}
