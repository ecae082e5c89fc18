package cli

import (
	"context"

	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// MetricsHandler prints the session's metrics in the Prometheus text format
type MetricsHandler struct {
	console  *Console
	gatherer prometheus.Gatherer
}

// NewMetricsHandler creates a metrics handler; gatherer may be nil
func NewMetricsHandler(console *Console, gatherer prometheus.Gatherer) *MetricsHandler {
	return &MetricsHandler{console: console, gatherer: gatherer}
}

// ViewMetrics writes every gathered family to the console
func (h *MetricsHandler) ViewMetrics(ctx context.Context) error {
	traceID := services.CorrelationID(ctx)

	if h.gatherer == nil {
		h.console.Println("Metrics are disabled. Set METRICS_ENABLED=true to collect them.")
		return h.console.Pause()
	}

	families, err := h.gatherer.Gather()
	if err != nil {
		h.console.PrintError(apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID, apperrors.WithDetails(err.Error())))
		return h.console.Pause()
	}

	h.console.Println("SESSION METRICS")
	h.console.Println("===============")
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(h.console.out, family); err != nil {
			h.console.PrintError(apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID, apperrors.WithDetails(err.Error())))
			break
		}
	}
	return h.console.Pause()
}
