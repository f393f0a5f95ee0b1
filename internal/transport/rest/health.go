package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

// HealthCheck is one named dependency checked by /ready and /health.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck wraps anything that can Ping as a HealthCheck.
func PingCheck(name string, p pinger) HealthCheck {
	return HealthCheck{Name: name, Check: p.Ping}
}

type recordCounter interface {
	Counts() map[string]int
}

// HealthHandler serves the health endpoints.
type HealthHandler struct {
	version string
	records recordCounter
	checks  []HealthCheck
}

// NewHealthHandler creates a HealthHandler. records may be nil.
func NewHealthHandler(version string, records recordCounter, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{version: version, records: records, checks: checks}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Records    map[string]int        `json:"records,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one checked component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when every check passes and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())
	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	if !ok {
		resp.Status = "down"
		resp.Components = components
	}
	writeJSON(w, statusFor(ok), resp)
}

// Health reports every component with its latency, the build version and
// the number of loaded records per collection.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.run(r.Context())
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	if !ok {
		resp.Status = "down"
	}
	if h.records != nil {
		resp.Records = h.records.Counts()
	}
	writeJSON(w, statusFor(ok), resp)
}

func (h *HealthHandler) run(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	healthy := true
	for _, c := range h.checks {
		start := time.Now()
		err := c.Check(ctx)
		if err != nil {
			healthy = false
			components[c.Name] = CompStatus{Status: "down", Error: err.Error()}
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, healthy
}

func statusFor(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
