package tui

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds serve-mode counters. Labels are bounded: outcomes are
// "won"/"lost", phases are the five phase names, reasons are fixed strings.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive   prometheus.Gauge
	sessionsTotal    prometheus.Counter
	matches          *prometheus.CounterVec
	phaseTransitions *prometheus.CounterVec
	tickDuration     prometheus.Histogram
	rejected         *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "invaders_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "invaders_sessions_total",
			Help: "SSH sessions started",
		}),
		matches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "invaders_matches_total",
			Help: "Finished matches by outcome",
		}, []string{"variant", "outcome"}),
		phaseTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "invaders_phase_transitions_total",
			Help: "Phase transitions by target phase",
		}, []string{"phase"}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "invaders_tick_duration_seconds",
			Help:    "Time spent in one simulation step",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "invaders_connections_rejected_total",
			Help: "Connections rejected before a session started",
		}, []string{"reason"}),
	}
}

// Registry exposes the underlying registry for scraping and tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// SessionStarted counts a new session.
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.Inc()
}

// SessionEnded marks a session as closed.
func (m *Metrics) SessionEnded() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// MatchFinished counts a finished match.
func (m *Metrics) MatchFinished(variant string, won bool) {
	if m == nil {
		return
	}
	outcome := "lost"
	if won {
		outcome = "won"
	}
	m.matches.WithLabelValues(variant, outcome).Inc()
}

// PhaseEntered counts a phase transition.
func (m *Metrics) PhaseEntered(phase string) {
	if m == nil {
		return
	}
	m.phaseTransitions.WithLabelValues(phase).Inc()
}

// ObserveTick records how long one simulation step took.
func (m *Metrics) ObserveTick(d time.Duration) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
}

// Rejected counts a refused connection.
func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

// NewMetricsRouter serves /metrics and /healthz.
func NewMetricsRouter(m *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n")) //nolint:errcheck // client went away
	})
	if m != nil {
		r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// MetricsServer is the HTTP endpoint exposing Metrics.
type MetricsServer struct {
	srv *http.Server
}

// NewMetricsServer creates a server listening on addr.
func NewMetricsServer(addr string, m *Metrics) *MetricsServer {
	return &MetricsServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewMetricsRouter(m),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *MetricsServer) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
