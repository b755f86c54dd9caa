package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fit outcomes
const (
	OK      = "ok"
	Skipped = "skipped"
	Failed  = "failed"
)

// Storage operations
const (
	Store = "store"
	Load  = "load"
)

var Observer = &Metrics{
	registry:   prometheus.NewRegistry(),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	Observer.registry.MustRegister(Observer.prometheus.collectors()...)
}

type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// Fit counts a fit for the given curve type and outcome.
func (m *Metrics) Fit(curve, status string, duration time.Duration) {
	m.prometheus.Fits.WithLabelValues(curve, status).Inc()
	if status == OK {
		m.prometheus.FitDuration.WithLabelValues(curve).Observe(duration.Seconds())
	}
}

// StorageError counts a failed storage operation.
func (m *Metrics) StorageError(op string) {
	m.prometheus.StorageErrors.WithLabelValues(op).Inc()
}

// Handler exposes the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
