// Package metrics exposes Prometheus collectors for the meal service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultNotFound = "out_of_range"
	ResultError    = "error"
)

// Metrics groups the collectors updated by the service.
type Metrics struct {
	registry *prometheus.Registry

	// Meals is the number of meals currently held.
	Meals prometheus.Gauge

	// Operations counts store operations by name and result.
	Operations *prometheus.CounterVec

	// PersistFailures counts saves and loads that failed.
	PersistFailures prometheus.Counter
}

// New creates the collectors on a fresh registry.
// The registry also carries the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Meals: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealtracker",
			Name:      "meals",
			Help:      "Number of meals in the list.",
		}),
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mealtracker",
			Name:      "operations_total",
			Help:      "Meal list operations by result.",
		}, []string{"op", "result"}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mealtracker",
			Name:      "persist_failures_total",
			Help:      "Failed saves and loads of the meal list.",
		}),
	}
}

// Observe records one operation.
func (m *Metrics) Observe(op, result string) {
	m.Operations.WithLabelValues(op, result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
