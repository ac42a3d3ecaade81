package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/moderation-backend/internal/config"
)

func dashboardCORS() config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   "https://mod.example.com, https://admin.example.com",
		AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
		AllowedHeaders:   "Content-Type,X-Request-Id",
		AllowCredentials: true,
		MaxAge:           600,
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.CORSConfig
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantCreds   string
		wantNext    bool
		wantMethods string
	}{
		{
			name:        "preflight from allowed origin",
			cfg:         dashboardCORS(),
			method:      http.MethodOptions,
			origin:      "https://mod.example.com",
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "https://mod.example.com",
			wantCreds:   "true",
			wantMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		},
		{
			name:       "simple request from second origin",
			cfg:        dashboardCORS(),
			method:     http.MethodPost,
			origin:     "https://admin.example.com",
			wantStatus: http.StatusOK,
			wantOrigin: "https://admin.example.com",
			wantCreds:  "true",
			wantNext:   true,
		},
		{
			name:       "unknown origin passes without headers",
			cfg:        dashboardCORS(),
			method:     http.MethodGet,
			origin:     "https://evil.example.com",
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "no origin header",
			cfg:        dashboardCORS(),
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name: "wildcard without credentials",
			cfg: config.CORSConfig{
				AllowedOrigins: "*",
				AllowedMethods: "GET",
				AllowedHeaders: "Content-Type",
			},
			method:     http.MethodGet,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:5173",
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

			req := httptest.NewRequest(tt.method, "/api/v1/terms", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tt.cfg)(next).ServeHTTP(rec, req)

			h := rec.Header()
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			assert.Equal(t, tt.wantOrigin, h.Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, h.Get("Access-Control-Allow-Credentials"))
			assert.Equal(t, tt.wantMethods, h.Get("Access-Control-Allow-Methods"))
			assert.Contains(t, h.Values("Vary"), "Origin")
			if tt.wantOrigin != "" {
				assert.Equal(t, RequestIDHeader, h.Get("Access-Control-Expose-Headers"))
			}
		})
	}
}

func TestCORS_PreflightHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/moderate", nil)
	req.Header.Set("Origin", "https://mod.example.com")
	rec := httptest.NewRecorder()

	CORS(dashboardCORS())(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "Content-Type,X-Request-Id", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a , ,b,"))
	assert.Empty(t, splitList(""))
}
