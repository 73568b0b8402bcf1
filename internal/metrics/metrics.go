// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "impact_report"

type collectors struct {
	importRows     *prometheus.CounterVec
	importRequests *prometheus.CounterVec
	importRetries  prometheus.Counter
	impactViews    *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

var registry = sync.OnceValue(func() *collectors {
	return &collectors{
		importRows: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_rows_total",
			Help:      "Donor rows seen by imports, by result.",
		}, []string{"result"}),
		importRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_requests_total",
			Help:      "Donor import requests, by outcome.",
		}, []string{"outcome"}),
		importRetries: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_conflict_retries_total",
			Help:      "Batch inserts re-planned after a unique constraint violation.",
		}),
		impactViews: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impact_page_views_total",
			Help:      "Public impact page lookups, by result.",
		}, []string{"result"}),
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets: []float64{
				0.005, 0.01, 0.025, 0.05,
				0.1, 0.25, 0.5,
				1, 2.5, 5, 10,
			},
		}, []string{"method", "route"}),
	}
})

// Row results
const (
	RowInserted  = "inserted"
	RowInvalid   = "invalid"
	RowDuplicate = "duplicate"
)

// ObserveImport records one finished import.
func ObserveImport(outcome string, inserted, invalid, duplicates int) {
	c := registry()
	c.importRequests.WithLabelValues(outcome).Inc()
	c.importRows.WithLabelValues(RowInserted).Add(float64(inserted))
	c.importRows.WithLabelValues(RowInvalid).Add(float64(invalid))
	c.importRows.WithLabelValues(RowDuplicate).Add(float64(duplicates))
}

// ObserveImportRetry counts a re-planned batch.
func ObserveImportRetry() {
	registry().importRetries.Inc()
}

// ObserveImpactView counts a public impact page lookup.
func ObserveImpactView(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	registry().impactViews.WithLabelValues(result).Inc()
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c := registry()
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
