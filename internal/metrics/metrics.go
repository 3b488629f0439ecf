// Package metrics exposes interaction counters over HTTP in the Prometheus
// text format, alongside a liveness endpoint.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "teamsplit"

// Metrics implements bot.Recorder on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	approvals   prometheus.Counter
	reshuffles  prometheus.Counter
	teamsDrawn  prometheus.Counter
}

// New registers the counters. sessions, when non-nil, is sampled on every
// scrape for the active session gauge.
func New(sessions func() int) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Player lists received, by result.",
		}, []string{"result"}),
		approvals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "approvals_total",
			Help:      "Team lists approved.",
		}),
		reshuffles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reshuffles_total",
			Help:      "Reshuffle button presses.",
		}),
		teamsDrawn: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teams_drawn_total",
			Help:      "Teams produced across all draws.",
		}),
	}
	if sessions != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Users with a stored roster.",
		}, func() float64 { return float64(sessions()) })
	}
	return m
}

func (m *Metrics) Submission(accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
	}
	m.submissions.WithLabelValues(result).Inc()
}

func (m *Metrics) Approved()        { m.approvals.Inc() }
func (m *Metrics) Reshuffled()      { m.reshuffles.Inc() }
func (m *Metrics) TeamsDrawn(n int) { m.teamsDrawn.Add(float64(n)) }

// Handler serves /metrics and /healthz.
func (m *Metrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "OK")
	})
	return mux
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (m *Metrics) Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", addr).Msg("Serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	}
}
