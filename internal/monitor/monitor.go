// Package monitor exposes the live simulation over stdlib net/http, in
// the shape of ryx's api.Server: a small Server wrapping an
// http.Server and a *http.ServeMux, with each endpoint backed by an
// injected read-only view instead of api.Server's NodeProvider
// interface bundle. Unlike api.Server, monitor has no mutation
// endpoints — the core exposes no mutable runtime parameters for a
// PATCH-style handler to touch.
package monitor

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/BasicAcid/meshrelax/internal/topology"
)

// Server serves the most recently observed frame and the static mesh
// topology as JSON.
type Server[V any] struct {
	topo topology.Snapshot

	mu        sync.RWMutex
	elapsedMS int64
	grid      [][]V
	frames    int64

	http *http.Server
}

// New creates a monitor for a mesh with the given static topology.
func New[V any](topo topology.Snapshot) *Server[V] {
	return &Server[V]{topo: topo}
}

// Observe records the latest frame; call it once per frame received
// from the simulation's output channel.
func (s *Server[V]) Observe(elapsedMS int64, grid [][]V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsedMS = elapsedMS
	s.grid = grid
	s.frames++
}

// Start begins serving on addr in a background goroutine and returns
// immediately; call Shutdown to stop it.
func (s *Server[V]) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/frame", s.handleFrame)
	mux.HandleFunc("/topology", s.handleTopology)

	s.http = &http.Server{Addr: addr, Handler: mux}

	errc := make(chan error, 1)
	go func() {
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	default:
		return nil
	}
}

// Shutdown stops the HTTP server via http.Server.Close: the listener
// and any open connections are closed immediately, without waiting
// for in-flight requests to finish.
func (s *Server[V]) Shutdown() error {
	if s.http == nil {
		return nil
	}
	return s.http.Close()
}

func (s *Server[V]) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSON(w, map[string]any{
		"q":           s.topo.Q,
		"frames_seen": s.frames,
		"elapsed_ms":  s.elapsedMS,
	})
}

func (s *Server[V]) handleFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	writeJSON(w, map[string]any{
		"elapsed_ms": s.elapsedMS,
		"grid":       s.grid,
	})
}

func (s *Server[V]) handleTopology(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.topo)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
