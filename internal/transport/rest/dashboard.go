package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/service/dashboard"
)

type dashboardService interface {
	Overview(ctx context.Context) (*dashboard.Overview, error)
}

// DashboardHandler serves the overview and analytics summary.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Overview handles GET /api/v1/dashboard.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverviewResponse(o))
}
