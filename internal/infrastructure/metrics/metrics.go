package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics covers the purchase funnel: sessions opened,
// reconciliation outcomes, download grants and error classes.
type CheckoutMetrics struct {
	SessionsCreatedTotal       prometheus.CounterVec
	SessionsCreatedAmountTotal prometheus.CounterVec

	OrdersReconciledTotal       prometheus.CounterVec
	OrdersReconciledAmountTotal prometheus.CounterVec

	DownloadsGrantedTotal prometheus.Counter

	GatewayCallDuration prometheus.HistogramVec

	SessionErrorsTotal   prometheus.CounterVec
	ReconcileErrorsTotal prometheus.CounterVec
}

func NewCheckoutMetrics() *CheckoutMetrics {
	return &CheckoutMetrics{
		SessionsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_sessions_created_total",
				Help: "Hosted-checkout sessions opened",
			},
			[]string{"currency"},
		),

		SessionsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_sessions_created_amount_total",
				Help: "Total amount of opened checkout sessions",
			},
			[]string{"currency"},
		),

		OrdersReconciledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_reconciled_total",
				Help: "Orders moved to a terminal status by the callback reconciler",
			},
			[]string{"status", "currency"},
		),

		OrdersReconciledAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_reconciled_amount_total",
				Help: "Total amount of reconciled orders",
			},
			[]string{"status", "currency"},
		),

		DownloadsGrantedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "downloads_granted_total",
				Help: "Signed download URLs minted",
			},
		),

		GatewayCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_call_duration_seconds",
				Help:    "Latency of hosted-checkout gateway calls",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"operation", "outcome"},
		),

		SessionErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_session_errors_total",
				Help: "Session initiation failures by class",
			},
			[]string{"error_type"},
		),

		ReconcileErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_reconcile_errors_total",
				Help: "Callback reconciliation failures by class",
			},
			[]string{"error_type"},
		),
	}
}

func (m *CheckoutMetrics) RecordSessionCreated(currency string, amount float64) {
	m.SessionsCreatedTotal.WithLabelValues(currency).Inc()
	m.SessionsCreatedAmountTotal.WithLabelValues(currency).Add(amount)
}

func (m *CheckoutMetrics) RecordReconciled(status, currency string, amount float64) {
	m.OrdersReconciledTotal.WithLabelValues(status, currency).Inc()
	m.OrdersReconciledAmountTotal.WithLabelValues(status, currency).Add(amount)
}

func (m *CheckoutMetrics) RecordDownloadGranted() {
	m.DownloadsGrantedTotal.Inc()
}

func (m *CheckoutMetrics) RecordGatewayCall(operation, outcome string, seconds float64) {
	m.GatewayCallDuration.WithLabelValues(operation, outcome).Observe(seconds)
}

func (m *CheckoutMetrics) RecordSessionError(errorType string) {
	m.SessionErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *CheckoutMetrics) RecordReconcileError(errorType string) {
	m.ReconcileErrorsTotal.WithLabelValues(errorType).Inc()
}
