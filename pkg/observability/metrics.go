package observability

import (
	"net/http"

	"github.com/aretw0/fae/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by evaluation hooks.
// Each Metrics owns its registry, so several can live in one process.
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	strings     *prometheus.CounterVec
	walkLength  prometheus.Histogram
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fae_evaluations_total",
				Help: "Total number of automaton evaluations by verdict",
			},
			[]string{"verdict"},
		),
		strings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fae_strings_total",
				Help: "Total number of evaluated test strings by outcome",
			},
			[]string{"outcome"},
		),
		walkLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fae_walk_length",
				Help:    "Number of transitions taken per evaluated string",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
	m.registry.MustRegister(m.evaluations, m.strings, m.walkLength)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStringEvaluated: func(e *domain.StringEvent) {
			m.strings.WithLabelValues(string(e.Outcome)).Inc()
			if e.Outcome != domain.OutcomeForeign {
				m.walkLength.Observe(float64(e.Steps))
			}
		},
		OnEvaluationEnd: func(e *domain.EvaluationEvent) {
			verdict := "passed"
			switch {
			case e.Error != "":
				verdict = "error"
			case !e.Passed:
				verdict = "failed"
			}
			m.evaluations.WithLabelValues(verdict).Inc()
		},
	}
}

// Registry exposes the underlying registry, e.g. for tests or extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
