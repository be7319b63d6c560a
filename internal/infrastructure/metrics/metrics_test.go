package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/mom-generator/pkg/ai"
)

var _ ai.UpstreamObserver = (*Metrics)(nil)

func TestObserveUpstream(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpstream("zoom", "token", 200, time.Now())
	m.ObserveUpstream("zoom", "token", 200, time.Now())
	m.ObserveUpstream("zoom", "download", 0, time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("zoom", "token", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("zoom", "download", "error")))
}

func TestObserveGeneration(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGeneration("bulletPoints", "timeout", 2048, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("bulletPoints", "timeout")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpstream("zoom", "token", 500, time.Now())
		m.ObserveGeneration("bulletPoints", "success", 10, time.Now())
	})
}
