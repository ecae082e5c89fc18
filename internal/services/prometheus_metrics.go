package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionProcessed *prometheus.CounterVec
	transactionDuration  prometheus.Histogram
	transactionAmount    *prometheus.HistogramVec
	customerCreatedTotal *prometheus.CounterVec
	accountsOpenedTotal  *prometheus.CounterVec
	accountsTotal        prometheus.Gauge
	bankBalanceTotal     prometheus.Gauge
	statementsGenerated  prometheus.Counter
}

// NewPrometheusMetrics registers the bank metrics on reg. A private registry
// keeps repeated construction (tests, one per session) from colliding.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_processing_total",
				Help: "Total number of transactions processed",
			},
			[]string{"operation", "status"},
		),
		transactionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_processing_duration_milliseconds",
				Help:    "Transaction processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_amount",
				Help:    "Amount of successful transactions in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
			[]string{"operation"},
		),
		customerCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
			[]string{"customer_type"},
		),
		accountsOpenedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_opened_total",
				Help: "Total number of accounts opened",
			},
			[]string{"account_type"},
		),
		accountsTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "accounts_total",
				Help: "Current number of registered accounts",
			},
		),
		bankBalanceTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "bank_balance_total",
				Help: "Sum of all account balances",
			},
		),
		statementsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of transaction histories generated",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	reason := tags["reason"]

	switch name {
	case "transaction.processed.success":
		m.transactionProcessed.WithLabelValues(operation, "success").Inc()
	case "transaction.processed.failed":
		m.transactionProcessed.WithLabelValues(operation, "failed_"+reason).Inc()
	case "customer_created":
		m.customerCreatedTotal.WithLabelValues(tags["customer_type"]).Inc()
	case "account_opened":
		m.accountsOpenedTotal.WithLabelValues(tags["account_type"]).Inc()
	case "statement_generated":
		m.statementsGenerated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.processing":
		m.transactionDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transaction_amount":
		m.transactionAmount.WithLabelValues(tags["operation"]).Observe(value)
	case "accounts_total":
		m.accountsTotal.Set(value)
	case "bank_balance_total":
		m.bankBalanceTotal.Set(value)
	}
}

// noopMetrics is used when metrics are disabled
type noopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}

func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
