package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/review"
)

type reviewService interface {
	List(ctx context.Context, input review.ListInput) ([]domain.ReviewItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
	Escalate(ctx context.Context, id uuid.UUID) (*domain.ReviewItem, error)
}

// ReviewHandler serves the flagged-content queue.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "reviews")}
}

// List handles GET /api/v1/reviews?status=&severity=&sort=date|severity.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	items, err := h.svc.List(r.Context(), review.ListInput{
		Status:   domain.ReviewStatus(q.Get("status")),
		Severity: domain.Severity(q.Get("severity")),
		Sort:     domain.ReviewSort(q.Get("sort")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reviewItemResponse, len(items))
	for i := range items {
		out[i] = toReviewItemResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.svc.Get)
}

// Approve handles POST /api/v1/reviews/{id}/approve.
func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.svc.Approve)
}

// Reject handles POST /api/v1/reviews/{id}/reject.
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.svc.Reject)
}

// Escalate handles POST /api/v1/reviews/{id}/escalate.
func (h *ReviewHandler) Escalate(w http.ResponseWriter, r *http.Request) {
	h.do(w, r, h.svc.Escalate)
}

func (h *ReviewHandler) do(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.ReviewItem, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	item, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewItemResponse(item))
}
