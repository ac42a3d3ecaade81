package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/settings"
)

type settingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, input settings.UpdateInput) (domain.Settings, error)
}

// SettingsHandler serves moderation settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	Mode                *string `json:"mode"`
	AutoModeration      *bool   `json:"autoModeration"`
	RealTimeProcessing  *bool   `json:"realTimeProcessing"`
	Notifications       *bool   `json:"notifications"`
	ConfidenceThreshold *int    `json:"confidenceThreshold"`
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update handles PUT /api/v1/settings. Omitted fields keep their values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := settings.UpdateInput{
		AutoModeration:      req.AutoModeration,
		RealTimeProcessing:  req.RealTimeProcessing,
		Notifications:       req.Notifications,
		ConfidenceThreshold: req.ConfidenceThreshold,
	}
	if req.Mode != nil {
		m := domain.ModerationMode(*req.Mode)
		input.Mode = &m
	}

	s, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}
