package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec
	AutoAssigned *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status.",
			}, []string{"route", "method", "status"}),
			HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency distribution for HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"route", "method"}),
			AutoAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "appointment_auto_assign_total",
				Help:      "Seller auto-assignment outcomes.",
			}, []string{"outcome"}),
		}

		prometheus.MustRegister(
			metricsInstance.HTTPRequests,
			metricsInstance.HTTPLatency,
			metricsInstance.AutoAssigned,
		)
	})
	return metricsInstance
}
