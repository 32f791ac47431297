package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics carries the payment counters exposed on /metrics.
type Metrics struct {
	registry *prometheus.Registry

	PaymentsInitiated *prometheus.CounterVec
	CallbacksResolved *prometheus.CounterVec
	Verifications     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		PaymentsInitiated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "payments_initiated_total",
			Help:      "Payment initiations by method and outcome.",
		}, []string{"method", "outcome"}),
		CallbacksResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "callbacks_resolved_total",
			Help:      "Provider callback resolutions by method and terminal state.",
		}, []string{"method", "state"}),
		Verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paygate",
			Name:      "verifications_total",
			Help:      "Standalone payment verifications by method and outcome.",
		}, []string{"method", "outcome"}),
	}

	registry.MustRegister(m.PaymentsInitiated, m.CallbacksResolved, m.Verifications)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
