package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for webhook reconciliation.
type Metrics struct {
	// Webhook events by type and outcome
	EventsProcessed *prometheus.CounterVec

	// Correlation-id resolutions by confidence tier
	Resolutions *prometheus.CounterVec

	// DID generations and credential mints
	DIDsGenerated     prometheus.Counter
	CredentialsMinted prometheus.Counter

	// End-to-end webhook processing latency
	ProcessLatency prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		EventsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kcg_webhook_events_total",
			Help: "Webhook events processed by event type and outcome",
		}, []string{"type", "outcome"}),

		Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kcg_identity_resolutions_total",
			Help: "Correlation-id resolutions by confidence tier",
		}, []string{"confidence"}),

		DIDsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kcg_dids_generated_total",
			Help: "DIDs generated for verified issuers",
		}),

		CredentialsMinted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kcg_credentials_minted_total",
			Help: "Credentials minted via the wallet provider",
		}),

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kcg_webhook_process_duration_seconds",
			Help:    "Duration of full webhook event processing",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementEvent records a processed webhook event. Nil-safe so callers
// can run without metrics wired (tests).
func (m *Metrics) IncrementEvent(eventType, outcome string) {
	if m != nil {
		m.EventsProcessed.WithLabelValues(eventType, outcome).Inc()
	}
}

// IncrementResolution records one correlation-id resolution attempt.
func (m *Metrics) IncrementResolution(confidence string) {
	if m != nil {
		m.Resolutions.WithLabelValues(confidence).Inc()
	}
}

// IncrementDID records a DID generation.
func (m *Metrics) IncrementDID() {
	if m != nil {
		m.DIDsGenerated.Inc()
	}
}

// IncrementMint records a credential mint.
func (m *Metrics) IncrementMint() {
	if m != nil {
		m.CredentialsMinted.Inc()
	}
}

// ObserveProcessLatency records end-to-end webhook processing time.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}
