package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/moderation"
)

type moderationService interface {
	Classify(ctx context.Context, text string) (domain.Verdict, error)
	Analyze(ctx context.Context, text string) (domain.Verdict, error)
	Moderate(ctx context.Context, input moderation.ModerateInput) (*moderation.ModerateResult, error)
}

// ModerationHandler serves classification endpoints.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type textRequest struct {
	Text string `json:"text"`
}

type moderateRequest struct {
	Text     string `json:"text"`
	Platform string `json:"platform"`
}

// Classify handles POST /api/v1/classify against the dictionary.
func (h *ModerationHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	verdict, err := h.svc.Classify(r.Context(), req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVerdictResponse(verdict))
}

// Analyze handles POST /api/v1/demo/analyze. The response is delayed; a
// client that disconnects first gets nothing.
func (h *ModerationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	verdict, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toVerdictResponse(verdict))
}

// Moderate handles POST /api/v1/moderate.
func (h *ModerationHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Moderate(r.Context(), moderation.ModerateInput{Text: req.Text, Platform: req.Platform})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toModerateResponse(res))
}
