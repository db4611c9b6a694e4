// Package metrics defines Prometheus metrics for the admin API.
package metrics

import (
	"strconv"
	"time"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors registered for one process.
type Metrics struct {
	RequestDuration    *prometheus.HistogramVec
	BulkBatches        *prometheus.CounterVec
	BulkItems          *prometheus.CounterVec
	BulkDuration       *prometheus.HistogramVec
	AuditWriteFailures *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "editorial_admin_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		BulkBatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editorial_admin_bulk_batches_total",
				Help: "Bulk operations executed, by operation",
			},
			[]string{"operation"},
		),
		BulkItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editorial_admin_bulk_items_total",
				Help: "Bulk items processed, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		BulkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "editorial_admin_bulk_duration_seconds",
				Help:    "Wall time of one bulk operation",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"operation"},
		),
		AuditWriteFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "editorial_admin_audit_write_failures_total",
				Help: "Mutations applied whose audit record could not be written",
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.RequestDuration, m.BulkBatches, m.BulkItems, m.BulkDuration, m.AuditWriteFailures)
	return m
}

// ObserveBatch records one finished bulk operation.
func (m *Metrics) ObserveBatch(op domain.OperationKind, d time.Duration) {
	m.BulkBatches.WithLabelValues(op.String()).Inc()
	m.BulkDuration.WithLabelValues(op.String()).Observe(d.Seconds())
}

// ObserveItem records the outcome of one bulk item. outcome is "succeeded"
// or a failure kind.
func (m *Metrics) ObserveItem(op domain.OperationKind, outcome string) {
	m.BulkItems.WithLabelValues(op.String(), outcome).Inc()
}

// AuditWriteFailed records an unaudited mutation.
func (m *Metrics) AuditWriteFailed(op domain.OperationKind) {
	m.AuditWriteFailures.WithLabelValues(op.String()).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	m.RequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}
