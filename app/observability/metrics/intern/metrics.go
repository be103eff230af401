package internmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "intern_dashboard"

// InternMetrics records data-source selection and store health.
type InternMetrics interface {
	RecordSourceSelection(ctx context.Context, operation, source string)
	RecordReadFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordSeed(ctx context.Context, inserted int)
	SetStoreConnected(connected bool)
}

// PrometheusMetrics implements InternMetrics with Prometheus collectors.
type PrometheusMetrics struct {
	sourceSelections *prometheus.CounterVec
	readFailures     *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	seededRows       prometheus.Counter
	storeConnected   prometheus.Gauge
}

// NewPrometheus registers the intern collectors on reg.
func NewPrometheus(reg prometheus.Registerer) *PrometheusMetrics {
	f := promauto.With(reg)
	return &PrometheusMetrics{
		sourceSelections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_selections_total",
			Help:      "Requests answered per data source.",
		}, []string{"operation", "source"}),
		readFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_failures_total",
			Help:      "Reads against a connected store that failed and fell back.",
		}, []string{"operation"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Query operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		seededRows: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeded_rows_total",
			Help:      "Rows inserted by the empty-store seeder.",
		}),
		storeConnected: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_connected",
			Help:      "1 when the persistent store connection succeeded.",
		}),
	}
}

func (m *PrometheusMetrics) RecordSourceSelection(_ context.Context, operation, source string) {
	m.sourceSelections.WithLabelValues(operation, source).Inc()
}

func (m *PrometheusMetrics) RecordReadFailure(_ context.Context, operation string) {
	m.readFailures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordSeed(_ context.Context, inserted int) {
	m.seededRows.Add(float64(inserted))
}

func (m *PrometheusMetrics) SetStoreConnected(connected bool) {
	if connected {
		m.storeConnected.Set(1)
		return
	}
	m.storeConnected.Set(0)
}

// NoOpMetrics discards everything.
type NoOpMetrics struct{}

// NewNoop returns metrics that record nothing.
func NewNoop() InternMetrics {
	return &NoOpMetrics{}
}

func (*NoOpMetrics) RecordSourceSelection(context.Context, string, string) {}
func (*NoOpMetrics) RecordReadFailure(context.Context, string) {}
func (*NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (*NoOpMetrics) RecordSeed(context.Context, int) {}
func (*NoOpMetrics) SetStoreConnected(bool) {}

var (
	_ InternMetrics = (*PrometheusMetrics)(nil)
	_ InternMetrics = (*NoOpMetrics)(nil)
)
