package middleware

import (
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moderation-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds caller-supplied ids before they reach the logs.
const maxRequestIDLen = 128

// RequestID adopts the caller's X-Request-Id when it is a short printable
// token, otherwise generates a UUID. The id is echoed in the response and
// stored in the context together with the client IP.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := ctxutil.WithClientIP(ctxutil.WithRequestID(r.Context(), id), clientIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}

// clientIP is RemoteAddr without the port, or RemoteAddr as is when it has none.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
