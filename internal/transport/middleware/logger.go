package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, response size and the request id.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}

			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status == StatusClientClosedRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// StatusClientClosedRequest is the nginx convention for a request the client
// abandoned before the response was ready.
const StatusClientClosedRequest = 499

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}
