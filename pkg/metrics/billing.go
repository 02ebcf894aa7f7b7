package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// BillingMetrics records the outcome of invoice generation runs.
type BillingMetrics struct {
	generated prometheus.Counter
	failed    *prometheus.CounterVec
	render    prometheus.Histogram
}

// NewBillingMetrics registers the billing metrics on the provided registerer.
// A nil registerer yields a no-op instance, which keeps tests quiet.
func NewBillingMetrics(reg prometheus.Registerer) *BillingMetrics {
	if reg == nil {
		return &BillingMetrics{}
	}
	generated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "invoices_generated_total",
		Help: "Invoices generated successfully.",
	})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "invoices_failed_total",
		Help: "Invoice generation failures by pipeline step.",
	}, []string{"step"})
	render := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "invoice_render_duration_seconds",
		Help:    "Time spent rendering invoice PDFs.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(generated, failed, render)
	return &BillingMetrics{
		generated: generated,
		failed:    failed,
		render:    render,
	}
}

// IncGenerated counts a successful invoice.
func (m *BillingMetrics) IncGenerated() {
	if m == nil || m.generated == nil {
		return
	}
	m.generated.Inc()
}

// IncFailed counts a failed run, labelled by the step that stopped it.
func (m *BillingMetrics) IncFailed(step string) {
	if m == nil || m.failed == nil {
		return
	}
	m.failed.WithLabelValues(step).Inc()
}

// ObserveRender records the duration of a PDF render.
func (m *BillingMetrics) ObserveRender(d time.Duration) {
	if m == nil || m.render == nil {
		return
	}
	m.render.Observe(d.Seconds())
}
