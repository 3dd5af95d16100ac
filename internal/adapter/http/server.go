package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/units"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics and unit catalog endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// /units routes.
func NewServer(addr string, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.HandleFunc("GET /units", handleUnits)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

type unitEntry struct {
	Abbreviation string   `json:"abbreviation"`
	Name         string   `json:"name"`
	Kind         string   `json:"kind"`
	Accepted     []string `json:"accepted"`
}

type fieldEntry struct {
	Field     string   `json:"field"`
	Quantity  string   `json:"quantity"`
	Canonical string   `json:"canonical,omitempty"`
	Accepted  []string `json:"accepted,omitempty"`
}

type catalog struct {
	Units  []unitEntry  `json:"units"`
	Fields []fieldEntry `json:"fields"`
}

// handleUnits lists the recognized unit spellings and the units each payload
// field accepts, for upstream collectors to check against.
func handleUnits(w http.ResponseWriter, _ *http.Request) {
	var c catalog
	for _, u := range units.All() {
		c.Units = append(c.Units, unitEntry{
			Abbreviation: u.Abbreviation(),
			Name:         u.String(),
			Kind:         string(u.Kind()),
			Accepted:     units.Abbreviations(u),
		})
	}
	for _, f := range domain.Fields() {
		e := fieldEntry{Field: f.String(), Quantity: f.Quantity()}
		if target, ok := domain.CanonicalUnit(f); ok {
			e.Canonical = target.Abbreviation()
			for _, u := range domain.AcceptedUnits(f) {
				e.Accepted = append(e.Accepted, u.Abbreviation())
			}
		}
		c.Fields = append(c.Fields, e)
	}
	writeJSON(w, http.StatusOK, c)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
