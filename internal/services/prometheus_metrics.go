package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReportMetrics records report generation only. The API server uses it since
// it never imports or categorizes.
type ReportMetrics struct {
	reportsGenerated *prometheus.CounterVec
	reportDuration   prometheus.Histogram
}

// NewReportMetrics registers the report collectors on reg
func NewReportMetrics(reg prometheus.Registerer) *ReportMetrics {
	factory := promauto.With(reg)

	return &ReportMetrics{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 14),
			},
		),
	}
}

func (m *ReportMetrics) RecordCategorization(string) {}

func (m *ReportMetrics) RecordTransactionsImported(string, int) {}

func (m *ReportMetrics) RecordReport(status string, duration time.Duration) {
	m.reportsGenerated.WithLabelValues(status).Inc()
	m.reportDuration.Observe(float64(duration.Microseconds()) / 1000)
}

// PrometheusMetrics records every measurement of a CLI run
type PrometheusMetrics struct {
	*ReportMetrics
	transactionsCategorized *prometheus.CounterVec
	transactionsImported    *prometheus.CounterVec
}

// NewPrometheusMetrics registers all collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ReportMetrics: NewReportMetrics(reg),
		transactionsCategorized: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_categorized_total",
				Help: "Total number of transactions categorized by matching method",
			},
			[]string{"method"},
		),
		transactionsImported: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_imported_total",
				Help: "Total number of transactions saved to the export file per source",
			},
			[]string{"source"},
		),
	}
}

func (m *PrometheusMetrics) RecordCategorization(method string) {
	m.transactionsCategorized.WithLabelValues(method).Inc()
}

func (m *PrometheusMetrics) RecordTransactionsImported(source string, count int) {
	m.transactionsImported.WithLabelValues(source).Add(float64(count))
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

func (NoopMetrics) RecordCategorization(string)            {}
func (NoopMetrics) RecordTransactionsImported(string, int) {}
func (NoopMetrics) RecordReport(string, time.Duration)     {}
