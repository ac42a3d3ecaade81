package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged error and a JSON 500. If the
// handler had already started the response, the status cannot change and
// only the log entry is produced. http.ErrAbortHandler is re-panicked so
// net/http can abort the connection quietly.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("error", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.Bool("response_started", sw.wroteHeader),
				)
				if !sw.wroteHeader {
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
