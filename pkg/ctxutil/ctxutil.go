// Package ctxutil carries request-scoped values through context.Context.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller address (host only, no port).
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx returns the caller address, or "" if absent.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
