// Package metrics exports treasury service signals to Prometheus.
package metrics

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metric names.
const (
	MetricOperationsTotal          = "treasury_operations_total"
	MetricOperationDurationSeconds = "treasury_operation_duration_seconds"
	MetricLockWaitSeconds          = "treasury_lock_wait_seconds"
	MetricAccountBalance           = "treasury_account_balance"
)

// Recorder implements services.MetricsRecorder on its own registry, so tests
// and multiple instances do not collide on the global one.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Recorder struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	lockWait          *prometheus.HistogramVec
	accountBalance    *prometheus.GaugeVec
}

var _ portssvc.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder and registers its collectors, plus the
// process and Go runtime collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricOperationsTotal,
				Help: "Treasury operations by outcome. error_kind is empty on success.",
			},
			[]string{"operation", "error_kind"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricOperationDurationSeconds,
				Help:    "Wall time of treasury operations, locks and storage included.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		lockWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricLockWaitSeconds,
				Help:    "Time spent waiting for per-account locks.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"operation"},
		),
		accountBalance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricAccountBalance,
				Help: "Last committed balance per account.",
			},
			[]string{"account", "currency"},
		),
	}

	registry.MustRegister(
		r.operationsTotal,
		r.operationDuration,
		r.lockWait,
		r.accountBalance,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation counts one operation and records its duration.
func (r *Recorder) ObserveOperation(operation string, errorKind string, elapsed time.Duration) {
	r.operationsTotal.WithLabelValues(operation, errorKind).Inc()
	r.operationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLockWait records how long an operation waited for its locks.
func (r *Recorder) ObserveLockWait(operation string, waited time.Duration) {
	r.lockWait.WithLabelValues(operation).Observe(waited.Seconds())
}

// SetBalance publishes an account's committed balance.
func (r *Recorder) SetBalance(accountKey, currency string, balance float64) {
	r.accountBalance.WithLabelValues(accountKey, currency).Set(balance)
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
