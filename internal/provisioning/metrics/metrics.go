package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for dataset provisioning.
type Metrics struct {
	AttemptsTotal      *prometheus.CounterVec
	LoadsTotal         *prometheus.CounterVec
	LoadDuration       prometheus.Histogram
	CacheHitsTotal     prometheus.Counter
	AttachedCallers    prometheus.Counter
	InvalidationsTotal prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mockdata_acquisition_attempts_total",
			Help: "Acquisition attempts by source kind and outcome",
		}, []string{"kind", "outcome"}),
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mockdata_loads_total",
			Help: "Completed load cycles by result",
		}, []string{"result"}),
		LoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mockdata_load_duration_seconds",
			Help:    "Duration of a full load cycle across all attempts",
			Buckets: prometheus.DefBuckets,
		}),
		CacheHitsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "mockdata_cache_hits_total",
			Help: "Accesses served from the loaded payload",
		}),
		AttachedCallers: factory.NewCounter(prometheus.CounterOpts{
			Name: "mockdata_attached_callers_total",
			Help: "Accesses that joined a load already in flight",
		}),
		InvalidationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "mockdata_invalidations_total",
			Help: "Explicit cache invalidations",
		}),
	}
}

func (m *Metrics) RecordAttempt(kind, outcome string) {
	m.AttemptsTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) RecordLoad(result string, elapsed time.Duration) {
	m.LoadsTotal.WithLabelValues(result).Inc()
	m.LoadDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementCacheHits() {
	m.CacheHitsTotal.Inc()
}

func (m *Metrics) IncrementAttachedCallers() {
	m.AttachedCallers.Inc()
}

func (m *Metrics) IncrementInvalidations() {
	m.InvalidationsTotal.Inc()
}
