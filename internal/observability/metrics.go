package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the report service.
type Metrics struct {
	// Registry owns these metrics; the /metrics endpoint serves it. A private
	// registry avoids duplicate-collector panics when NewMetrics is called
	// more than once in tests.
	Registry *prometheus.Registry

	reportDuration *prometheus.HistogramVec
	reportsTotal   *prometheus.CounterVec
	ledgerErrors   prometheus.Counter
}

// NewMetrics creates a dedicated registry and registers all service metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "selfassess_report_duration_seconds",
				Help:    "Duration of report computations by period type.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"period"},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selfassess_reports_total",
				Help: "Total report computations by period type and status.",
			},
			[]string{"period", "status"},
		),
		ledgerErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "selfassess_ledger_errors_total",
				Help: "Total failures of the ledger aggregator.",
			},
		),
	}
}

// ObserveReport records one report computation.
func (m *Metrics) ObserveReport(period, status string, d time.Duration) {
	m.reportDuration.WithLabelValues(period).Observe(d.Seconds())
	m.reportsTotal.WithLabelValues(period, status).Inc()
}

// IncrLedgerError increments the ledger failure counter.
func (m *Metrics) IncrLedgerError() {
	m.ledgerErrors.Inc()
}
