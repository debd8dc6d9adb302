package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger reports whether the database is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler answers the orchestrator probes and the operator-facing
// /health report. PostgreSQL is the only hard dependency; the image
// store is best-effort and deliberately left out of readiness.
type HealthHandler struct {
	db      pinger
	version string
}

// NewHealthHandler creates a HealthHandler reporting the given build version.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type healthResponse struct {
	Status  string                 `json:"status"`
	Service string                 `json:"service"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]checkResult `json:"checks,omitempty"`
}

type checkResult struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live reports that the process is up. Always 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "pairlog"})
}

// Ready pings PostgreSQL; without it no endpoint can serve.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "down", Service: "pairlog"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "pairlog"})
}

// Health reports the build version and a per-dependency breakdown with
// ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := healthResponse{
		Status:  "ok",
		Service: "pairlog",
		Version: h.version,
		Checks:  map[string]checkResult{},
	}
	code := http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Checks["postgres"] = checkResult{Status: "down", Error: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Checks["postgres"] = checkResult{Status: "ok", Latency: time.Since(start).String()}
	}

	writeJSON(w, code, resp)
}
