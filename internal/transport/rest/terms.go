package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/service/dictionary"
)

type dictionaryService interface {
	ListTerms(ctx context.Context, input dictionary.ListInput) ([]domain.Term, error)
	GetTerm(ctx context.Context, id int64) (*domain.Term, error)
	AddTerm(ctx context.Context, input dictionary.AddTermInput) (*domain.Term, error)
	UpdateTerm(ctx context.Context, input dictionary.UpdateTermInput) (*domain.Term, error)
	RemoveTerm(ctx context.Context, id int64) error
}

// TermHandler serves the dictionary endpoints.
type TermHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(svc dictionaryService, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, log: logger.With("handler", "terms")}
}

type addTermRequest struct {
	Term       string `json:"term"`
	Severity   string `json:"severity"`
	Category   string `json:"category"`
	Definition string `json:"definition"`
	Examples   string `json:"examples"`
}

type updateTermRequest struct {
	Term       *string         `json:"term"`
	Severity   *string         `json:"severity"`
	Category   *string         `json:"category"`
	Definition *string         `json:"definition"`
	Examples   json.RawMessage `json:"examples"`
	Status     *string         `json:"status"`
}

// immutableTermFields may not appear in a PATCH body.
var immutableTermFields = []string{"id", "dateAdded"}

// List handles GET /api/v1/terms?search=&category=&status=.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	terms, err := h.svc.ListTerms(r.Context(), dictionary.ListInput{
		Search:   q.Get("search"),
		Category: domain.Category(q.Get("category")),
		Status:   domain.TermStatus(q.Get("status")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermsResponse(terms))
}

// Get handles GET /api/v1/terms/{id}.
func (h *TermHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := h.svc.GetTerm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Create handles POST /api/v1/terms.
func (h *TermHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addTermRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := h.svc.AddTerm(r.Context(), dictionary.AddTermInput{
		Term:       req.Term,
		Severity:   domain.Severity(req.Severity),
		Category:   domain.Category(req.Category),
		Definition: req.Definition,
		Examples:   req.Examples,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTermResponse(term))
}

// Update handles PATCH /api/v1/terms/{id}. Examples may be a comma-separated
// string or a JSON array.
func (h *TermHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var raw map[string]json.RawMessage
	if err := decodeJSON(w, r, &raw); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var fieldErrs []domain.FieldError
	for _, f := range immutableTermFields {
		if _, ok := raw[f]; ok {
			fieldErrs = append(fieldErrs, domain.FieldError{Field: f, Message: "immutable"})
		}
	}
	if len(fieldErrs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fieldErrs))
		return
	}

	var req updateTermRequest
	if err := remarshal(raw, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := dictionary.UpdateTermInput{
		ID:         id,
		Term:       req.Term,
		Definition: req.Definition,
	}
	if req.Severity != nil {
		s := domain.Severity(*req.Severity)
		input.Severity = &s
	}
	if req.Category != nil {
		c := domain.Category(*req.Category)
		input.Category = &c
	}
	if req.Status != nil {
		s := domain.TermStatus(*req.Status)
		input.Status = &s
	}
	if err := parseExamplesField(req.Examples, &input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	term, err := h.svc.UpdateTerm(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Delete handles DELETE /api/v1/terms/{id}?confirm=true.
func (h *TermHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if r.URL.Query().Get("confirm") != "true" {
		handleError(h.log, w, r, domain.NewValidationError("confirm", "must be true to delete a term"))
		return
	}

	if err := h.svc.RemoveTerm(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// remarshal decodes an already-parsed JSON object into a typed request,
// rejecting unknown fields.
func remarshal(raw map[string]json.RawMessage, dst any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", bodyErrorMessage(err))
	}
	return nil
}

func parseExamplesField(raw json.RawMessage, input *dictionary.UpdateTermInput) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return domain.NewValidationError("examples", "invalid string")
		}
		input.Examples = &s
	case '[':
		list := []string{}
		if err := json.Unmarshal(raw, &list); err != nil {
			return domain.NewValidationError("examples", "must be a list of strings")
		}
		input.ExampleList = list
	default:
		return domain.NewValidationError("examples", "must be a string or a list of strings")
	}
	return nil
}
