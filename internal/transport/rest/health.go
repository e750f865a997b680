package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

const healthCheckTimeout = 3 * time.Second

// pinger is anything whose reachability can be probed.
type pinger interface {
	Ping(ctx context.Context) error
}

// Check is a named dependency probed by readiness and health endpoints.
type Check struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler probing checks in name order.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	sorted := append([]Check(nil), checks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &HealthHandler{checks: sorted, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus is the status of one probed dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health reports each dependency with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]ComponentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	components := make(map[string]ComponentStatus, len(h.checks))
	ok := true
	for _, c := range h.checks {
		start := time.Now()
		err := c.Pinger.Ping(ctx)
		if err != nil {
			ok = false
			components[c.Name] = ComponentStatus{Status: "down", Error: err.Error()}
			continue
		}
		components[c.Name] = ComponentStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
