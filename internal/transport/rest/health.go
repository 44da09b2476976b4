package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

// pinger is a dependency that can report whether it is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// component is a named health dependency. Only critical components take
// the service down; the rest degrade it.
type component struct {
	name     string
	p        pinger
	critical bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db         pinger
	components []component
	version    string
}

// NewHealthHandler creates a HealthHandler. Readiness depends on the
// database only. Nil optional dependencies are skipped.
func NewHealthHandler(db, inference, storage pinger, version string) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	h.components = append(h.components, component{name: "database", p: db, critical: true})
	if inference != nil {
		h.components = append(h.components, component{name: "inference", p: inference})
	}
	if storage != nil {
		h.components = append(h.components, component{name: "object_store", p: storage})
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Health pings every component concurrently and reports per-component
// latency along with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.components))
	var wg sync.WaitGroup
	for i, c := range h.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = check(ctx, c.p)
		}()
	}
	wg.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.components))
	for i, c := range h.components {
		components[c.name] = results[i]
		if results[i].Status == "ok" {
			continue
		}
		switch {
		case c.critical:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func check(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
