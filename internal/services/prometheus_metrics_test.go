package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatheredValue returns the counter or gauge value of the series name{labels}
func gatheredValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] == pair.GetValue() {
					matched++
				}
			}
			if matched != len(labels) {
				continue
			}
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}

	t.Fatalf("series %s%v not gathered", name, labels)
	return 0
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)

	recorder.IncrementCounter("transaction.processed.success", map[string]string{"operation": "Deposit"})
	recorder.IncrementCounter("transaction.processed.success", map[string]string{"operation": "Deposit"})
	recorder.IncrementCounter("transaction.processed.failed", map[string]string{"operation": "Withdrawal", "reason": "below_minimum_balance"})
	recorder.IncrementCounter("account_opened", map[string]string{"account_type": "Savings"})
	recorder.IncrementCounter("customer_created", map[string]string{"customer_type": "premium"})
	recorder.IncrementCounter("statement_generated", nil)
	recorder.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, gatheredValue(t, reg, "transaction_processing_total", map[string]string{"operation": "Deposit", "status": "success"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "transaction_processing_total", map[string]string{"operation": "Withdrawal", "status": "failed_below_minimum_balance"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "accounts_opened_total", map[string]string{"account_type": "Savings"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "customer_created_total", map[string]string{"customer_type": "premium"}))
	assert.Equal(t, 1.0, gatheredValue(t, reg, "statements_generated_total", nil))
}

func TestPrometheusMetrics_GaugesAndHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(reg)

	recorder.RecordGauge("accounts_total", 3, nil)
	recorder.RecordGauge("bank_balance_total", 12500.5, nil)
	recorder.RecordGauge("transaction_amount", 600, map[string]string{"operation": "Withdrawal"})
	recorder.RecordProcessingTime("transaction.processing", 3*time.Millisecond)

	assert.Equal(t, 3.0, gatheredValue(t, reg, "accounts_total", nil))
	assert.Equal(t, 12500.5, gatheredValue(t, reg, "bank_balance_total", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	histograms := make(map[string]uint64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetHistogram() != nil {
				histograms[family.GetName()] += metric.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.Equal(t, uint64(1), histograms["transaction_amount"])
	assert.Equal(t, uint64(1), histograms["transaction_processing_duration_milliseconds"])
}

func TestPrometheusMetrics_PrivateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

func TestNoopMetrics(t *testing.T) {
	recorder := NewNoopMetrics()

	assert.NotPanics(t, func() {
		recorder.IncrementCounter("transaction.processed.success", nil)
		recorder.RecordGauge("accounts_total", 1, nil)
		recorder.RecordProcessingTime("transaction.processing", time.Second)
	})
}
