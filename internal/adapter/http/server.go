// Package http exposes the built reports plus health, readiness, and metrics
// endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tidewater-labs/weather-report-service/internal/report"
)

// Builder builds one report of the requested kind.
type Builder interface {
	Build(ctx context.Context, kind report.Kind) (report.Summary, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes report, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	builder    Builder
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /report/{overview,daily}, /healthz,
// /readyz, and /metrics routes.
func NewServer(addr string, builder Builder, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		builder: builder,
		logger:  logger,
	}

	mux.HandleFunc("GET /report/overview", s.handleReport(report.KindOverview))
	mux.HandleFunc("GET /report/daily", s.handleReport(report.KindDaily))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
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

// handleReport rebuilds the requested report from the source on every request
// and returns it as plain text.
func (s *Server) handleReport(kind report.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.builder.Build(r.Context(), kind)
		if err != nil {
			s.logger.Error("report request failed", "kind", kind, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "report could not be built",
			})
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Report-Days", strconv.Itoa(summary.Days))
		w.Header().Set("X-Generated-At", summary.GeneratedAt.Format(time.RFC3339))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(summary.Text)) //nolint:errcheck // best-effort response body
	}
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
