package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus collectors for the server.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlight        prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mockdata_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mockdata_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "mockdata_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		}),
	}
}

func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
