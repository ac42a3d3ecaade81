package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first argument is the outermost layer:
// Chain(a, b)(h) serves requests as a(b(h)). Nil entries are skipped, which
// lets callers leave out optional layers such as rate limiting.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}
