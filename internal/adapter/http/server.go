package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/relief-calc/internal/observability"
	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/couchcryptid/relief-calc/internal/study"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxStudyBytes bounds a study request body.
const maxStudyBytes = 1 << 20

// Server exposes the study API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  study.Evaluator
	store      *properties.Store
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the study API, /healthz, /livez,
// /readyz, and /metrics routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, evaluator study.Evaluator, store *properties.Store, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		evaluator: evaluator,
		store:     store,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("POST /v1/studies/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /v1/studies/sample", s.handleSample)
	mux.HandleFunc("GET /v1/fluids", s.handleFluids)
	mux.HandleFunc("GET /v1/gases", s.handleGases)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /livez", sharedobs.LivenessHandler())
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

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	st, err := study.DecodeJSON(http.MaxBytesReader(w, r.Body, maxStudyBytes))
	if err != nil {
		s.metrics.StudiesFailed.Inc()
		s.logger.Warn("study request rejected", "error", err, "remote", r.RemoteAddr)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := s.evaluator.Evaluate(st)
	s.metrics.ObserveCases(result.Cases, result.DesignBasis)
	s.logger.Info("study evaluated", "study_id", result.StudyID, "cases", len(result.Cases))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSample(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, study.Sample())
}

func (s *Server) handleFluids(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Fluids())
}

func (s *Server) handleGases(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Gases())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker sharedobs.ReadinessChecker) http.HandlerFunc {
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
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "encode response: " + err.Error()}) //nolint:errcheck // best-effort response
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes()) //nolint:errcheck // best-effort response
}
