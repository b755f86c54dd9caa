package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "curve_fit"

// Prometheus holds the collectors of the service.
type Prometheus struct {
	Fits          *prometheus.CounterVec
	FitDuration   *prometheus.HistogramVec
	StorageErrors *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fits_total",
				Help:      "Number of fit requests by curve type and outcome.",
			}, []string{"curve", "status"}),
		FitDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fit_duration_seconds",
				Help:      "Time spent fitting the samples.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			}, []string{"curve"}),
		StorageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "storage_errors_total",
				Help:      "Number of failed storage operations.",
			}, []string{"op"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Fits, p.FitDuration, p.StorageErrors}
}
