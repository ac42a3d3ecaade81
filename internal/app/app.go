package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moderation-backend/internal/config"
	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
	"github.com/heartmarshall/moderation-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, opens storage, builds the services and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	svcs, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svcs.Close()

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(cfg, svcs, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler assembles the router. Probes bypass the API middleware (CORS
// and rate limiting); every request passes recovery, request id and access
// logging.
func newHandler(cfg *config.Config, svcs *Services, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(svcs.storage.pinger, svcs.driver, BuildVersion()),
		Terms:      rest.NewTermHandler(svcs.Dictionary, logger),
		Moderation: rest.NewModerationHandler(svcs.Moderation, logger),
		Reviews:    rest.NewReviewHandler(svcs.Review, logger),
		Settings:   rest.NewSettingsHandler(svcs.Settings, logger),
		Dashboard:  rest.NewDashboardHandler(svcs.Dashboard, logger),
	}

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit(cfg.RateLimit.PerMinute)
	}

	router := rest.NewRouter(handlers, middleware.Chain(middleware.CORS(cfg.CORS), limit))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(router)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
