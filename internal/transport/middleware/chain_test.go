package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// trace appends name to the X-Trace response header around next.
func trace(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Trace", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name string
		mws  []Middleware
		want string
	}{
		{name: "empty", mws: nil, want: "handler"},
		{name: "outer first", mws: []Middleware{trace("recovery"), trace("request-id"), trace("logger")}, want: "recovery,request-id,logger,handler"},
		{name: "nil skipped", mws: []Middleware{trace("cors"), nil, trace("limit")}, want: "cors,limit,handler"},
		{name: "only nil", mws: []Middleware{nil, nil}, want: "handler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Chain(tt.mws...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Trace", "handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/terms", nil))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, strings.Join(rec.Header().Values("X-Trace"), ","))
		})
	}
}
