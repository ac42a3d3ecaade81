package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// storagePinger checks that the storage backend is reachable.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the /live, /ready and /health probes.
type HealthHandler struct {
	storage storagePinger
	driver  string
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. A nil pinger (in-memory storage)
// always reports the storage as up.
func NewHealthHandler(storage storagePinger, driver, version string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 while storage is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.probe(r.Context())
	writeJSON(w, statusCode(comp), HealthResponse{Status: comp.Status, Timestamp: h.now()})
}

// Health reports storage driver and latency alongside the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.probe(r.Context())
	writeJSON(w, statusCode(comp), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]CompStatus{"storage": comp},
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) CompStatus {
	if h.storage == nil {
		return CompStatus{Status: "ok", Driver: h.driver}
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.storage.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Driver: h.driver}
	}
	return CompStatus{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}
}

func statusCode(c CompStatus) int {
	if c.Status != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
