package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/moderation-backend/internal/domain"
	"github.com/heartmarshall/moderation-backend/internal/transport/middleware"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP responses. A request abandoned by
// the client gets status 499 and no body.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.Is(err, context.Canceled):
		log.WarnContext(r.Context(), "request canceled by client", slog.String("path", r.URL.Path))
		w.WriteHeader(middleware.StatusClientClosedRequest)
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed", Fields: make([]fieldResponse, 0, len(ve.Errors))}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a size-limited JSON body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", bodyErrorMessage(err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func bodyErrorMessage(err error) string {
	var maxErr *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return "required"
	case errors.As(err, &maxErr):
		return fmt.Sprintf("too large (max %d bytes)", maxErr.Limit)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("field %q has the wrong type", typeErr.Field)
	}
	return "invalid JSON: " + err.Error()
}

// pathID parses the {id} path value as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
