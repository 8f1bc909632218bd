// Package api exposes the planning engines over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/config"
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/sirupsen/logrus"
)

// Planner is the engine surface the handlers need.
type Planner interface {
	CompareAcquisition(ctx context.Context, in domain.AcquisitionInput) (*domain.AcquisitionComparison, error)
	ProjectRetirement(ctx context.Context, p domain.RetirementParameters, solve bool) (*domain.RetirementProjection, error)
}

// Handler serves the HTTP API.
type Handler struct {
	planner Planner
	engine  *calculation.CalculationEngine
	parser  *config.InputParser
	logger  logrus.FieldLogger
}

func NewHandler(planner Planner, engine *calculation.CalculationEngine, logger logrus.FieldLogger) *Handler {
	return &Handler{planner: planner, engine: engine, parser: config.NewInputParser(), logger: logger}
}

// NewRouter wires the routes. A nil limiter disables rate limiting.
func NewRouter(h *Handler, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.Use(h.logRequests)
	if limiter != nil {
		v1.Use(limiter.Middleware)
	}
	v1.HandleFunc("/acquisition/compare", h.CompareAcquisition).Methods(http.MethodPost)
	v1.HandleFunc("/retirement/project", h.ProjectRetirement).Methods(http.MethodPost)
	v1.HandleFunc("/retirement/events", h.AddLiquidityEvent).Methods(http.MethodPost)
	v1.HandleFunc("/retirement/events/{id}", h.RemoveLiquidityEvent).Methods(http.MethodDelete)
	v1.HandleFunc("/report", h.Report).Methods(http.MethodPost)
	return r
}

// NewServer wraps a router in an http.Server with conservative timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
