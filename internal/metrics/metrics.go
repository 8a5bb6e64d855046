package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors updated by the locator service.
type Metrics struct {
	Lookups        *prometheus.CounterVec
	SkippedRecords *prometheus.CounterVec
	FetchErrors    prometheus.Counter
	FetchSeconds   *prometheus.HistogramVec
	RecordsScanned prometheus.Histogram
	InFlight       prometheus.Gauge
}

// NewMetrics creates the locator collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Lookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locator_lookups_total",
			Help: "Total number of nearest location lookups by outcome.",
		}, []string{"status"}),
		SkippedRecords: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "locator_records_skipped_total",
			Help: "Total number of location records excluded from a search.",
		}, []string{"reason"}),
		FetchErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "locator_source_fetch_errors_total",
			Help: "Total number of failed fetches from the location source.",
		}),
		FetchSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "locator_source_fetch_duration_seconds",
			Help:    "Duration of fetches from the location source.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		RecordsScanned: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "locator_records_scanned",
			Help:    "Number of location records received per lookup.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		InFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "locator_lookups_in_flight",
			Help: "Current number of lookups being processed.",
		}),
	}
}
