package rest

import (
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
)

// Handlers groups every endpoint handler served by the router.
type Handlers struct {
	Health     *HealthHandler
	Terms      *TermHandler
	Moderation *ModerationHandler
	Reviews    *ReviewHandler
	Settings   *SettingsHandler
	Dashboard  *DashboardHandler
}

// NewRouter registers all routes. API routes are wrapped in api; probes
// are served bare so health checks never hit the rate limiter.
func NewRouter(h Handlers, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	apiMux := http.NewServeMux()

	apiMux.HandleFunc("POST /api/v1/classify", h.Moderation.Classify)
	apiMux.HandleFunc("POST /api/v1/demo/analyze", h.Moderation.Analyze)
	apiMux.HandleFunc("POST /api/v1/moderate", h.Moderation.Moderate)

	apiMux.HandleFunc("GET /api/v1/terms", h.Terms.List)
	apiMux.HandleFunc("POST /api/v1/terms", h.Terms.Create)
	apiMux.HandleFunc("GET /api/v1/terms/{id}", h.Terms.Get)
	apiMux.HandleFunc("PATCH /api/v1/terms/{id}", h.Terms.Update)
	apiMux.HandleFunc("DELETE /api/v1/terms/{id}", h.Terms.Delete)

	apiMux.HandleFunc("GET /api/v1/reviews", h.Reviews.List)
	apiMux.HandleFunc("GET /api/v1/reviews/{id}", h.Reviews.Get)
	apiMux.HandleFunc("POST /api/v1/reviews/{id}/approve", h.Reviews.Approve)
	apiMux.HandleFunc("POST /api/v1/reviews/{id}/reject", h.Reviews.Reject)
	apiMux.HandleFunc("POST /api/v1/reviews/{id}/escalate", h.Reviews.Escalate)

	apiMux.HandleFunc("GET /api/v1/settings", h.Settings.Get)
	apiMux.HandleFunc("PUT /api/v1/settings", h.Settings.Update)

	apiMux.HandleFunc("GET /api/v1/dashboard", h.Dashboard.Overview)

	mux.Handle("/api/", api(apiMux))

	return mux
}
