package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// Upstream calls (Zoom, identity providers, generation backends)
	UpstreamRequestsTotal  *prometheus.CounterVec
	UpstreamLatencySeconds *prometheus.HistogramVec

	// Minutes generation
	GenerationsTotal         *prometheus.CounterVec
	GenerationLatencySeconds *prometheus.HistogramVec
	PromptBytes              prometheus.Histogram
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mom_upstream_requests_total",
				Help: "Outbound requests by provider, operation and HTTP status",
			},
			[]string{"provider", "operation", "status"},
		),
		UpstreamLatencySeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mom_upstream_latency_seconds",
				Help:    "Outbound request latency",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider", "operation"},
		),
		GenerationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mom_generations_total",
				Help: "Minutes generation attempts by minute type and outcome",
			},
			[]string{"minute_type", "outcome"},
		),
		GenerationLatencySeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mom_generation_latency_seconds",
				Help:    "Minutes generation latency, including timed-out calls",
				Buckets: []float64{1, 2.5, 5, 10, 20, 30, 45, 60, 90, 120},
			},
			[]string{"minute_type", "outcome"},
		),
		PromptBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mom_prompt_bytes",
				Help:    "Size of prompts sent to the generation backend",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}
}

// ObserveUpstream records one outbound call. A nil receiver is a no-op so
// clients can run without metrics in tests.
func (m *Metrics) ObserveUpstream(provider, operation string, status int, started time.Time) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.UpstreamRequestsTotal.WithLabelValues(provider, operation, label).Inc()
	m.UpstreamLatencySeconds.WithLabelValues(provider, operation).Observe(time.Since(started).Seconds())
}

// ObserveGeneration records one generation outcome
func (m *Metrics) ObserveGeneration(minuteType, outcome string, promptLen int, started time.Time) {
	if m == nil {
		return
	}
	m.GenerationsTotal.WithLabelValues(minuteType, outcome).Inc()
	m.GenerationLatencySeconds.WithLabelValues(minuteType, outcome).Observe(time.Since(started).Seconds())
	m.PromptBytes.Observe(float64(promptLen))
}
