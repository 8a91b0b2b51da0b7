package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// NewRegistry builds the process-wide prometheus registry with the
// standard go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// HTTPMetrics instruments the request path.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "warehouse_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "warehouse_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	registry.MustRegister(m.requests, m.duration)
	return m
}

// ScanMetrics counts domain events.
type ScanMetrics struct {
	RowsIngested    prometheus.Counter
	IngestConflicts prometheus.Counter
	DuplicateProbes prometheus.Counter
}

func NewScanMetrics(registry *prometheus.Registry) *ScanMetrics {
	m := &ScanMetrics{
		RowsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_scan_rows_ingested_total",
			Help: "Scan rows committed by batch ingestion.",
		}),
		IngestConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_scan_ingest_conflicts_total",
			Help: "Batches rolled back on uniqueness conflicts.",
		}),
		DuplicateProbes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_scan_duplicate_probes_total",
			Help: "Duplicate-check requests served.",
		}),
	}
	registry.MustRegister(m.RowsIngested, m.IngestConflicts, m.DuplicateProbes)
	return m
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		NewHTTPMetrics,
		NewScanMetrics,
	),
)
