package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// pinger is anything the readiness probe can check.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name     string
	p        pinger
	optional bool
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	components []component
	version    string
	now        func() time.Time
}

// NewHealthHandler creates a HealthHandler that checks the database.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", p: db}},
		version:    version,
		now:        time.Now,
	}
}

// WithOptionalComponent adds a dependency the service can run without,
// e.g. a shared page cache. When it is down /health reports "degraded" and
// /ready still answers 200.
func (h *HealthHandler) WithOptionalComponent(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, p: p, optional: true})
	return h
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the result of pinging one component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is serving.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: stateOK, Timestamp: h.now()})
}

// Ready answers 503 while a required component is unreachable.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	state := h.probe(r.Context()).state
	status := http.StatusOK
	if state == stateDown {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: state, Timestamp: h.now()})
}

// Health reports every component with its ping latency and the build version.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := h.probe(r.Context())

	resp := HealthResponse{
		Status:     res.state,
		Version:    h.version,
		Components: res.components,
		Timestamp:  h.now(),
	}
	status := http.StatusOK
	if res.state == stateDown {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

const (
	stateOK       = "ok"
	stateDegraded = "degraded"
	stateDown     = "down"
)

type probeResult struct {
	state      string
	components map[string]CompStatus
}

// probe pings all components concurrently under one timeout. A failed
// required component makes the result down, a failed optional one degraded.
func (h *HealthHandler) probe(ctx context.Context) probeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu  sync.Mutex
		res = probeResult{state: stateOK, components: make(map[string]CompStatus, len(h.components))}
	)

	var g errgroup.Group
	for _, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			err := c.p.Ping(ctx)
			latency := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				res.components[c.name] = CompStatus{Status: stateOK, Latency: latency.String()}
				return nil
			}
			res.components[c.name] = CompStatus{Status: stateDown}
			switch {
			case !c.optional:
				res.state = stateDown
			case res.state == stateOK:
				res.state = stateDegraded
			}
			return nil
		})
	}
	_ = g.Wait()

	return res
}
