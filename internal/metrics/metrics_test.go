package metrics_test

import (
	"testing"
	"time"

	"github.com/fivetwenty-io/octane-zsr/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveRequest(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	collector.RequestStarted()
	collector.ObserveRequest("GET", 200, 20*time.Millisecond)
	collector.RequestStarted()
	collector.ObserveRequest("GET", 404, 5*time.Millisecond)
	collector.RequestStarted()
	collector.ObserveRequest("GET", 0, time.Millisecond)

	assert.Equal(t, 3, testutil.CollectAndCount(reg, "zsr_requests_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "zsr_errors_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "zsr_request_duration_seconds"))

	gathered, err := reg.Gather()
	assert.NoError(t, err)

	for _, family := range gathered {
		if family.GetName() == "zsr_in_flight_requests" {
			assert.InDelta(t, 0, family.GetMetric()[0].GetGauge().GetValue(), 0)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{0, metrics.ClassNetwork},
		{200, ""},
		{304, ""},
		{404, metrics.ClassClient},
		{503, metrics.ClassServer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, metrics.Classify(tt.status), "status %d", tt.status)
	}
}

func TestNewCollector_SharedRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	first := metrics.NewCollector(reg)

	var second *metrics.Collector

	require.NotPanics(t, func() { second = metrics.NewCollector(reg) })

	first.RequestStarted()
	first.ObserveRequest("GET", 200, time.Millisecond)
	second.RequestStarted()
	second.ObserveRequest("GET", 200, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() == "zsr_requests_total" {
			require.Len(t, family.GetMetric(), 1)
			assert.InDelta(t, 2, family.GetMetric()[0].GetCounter().GetValue(), 0)
		}
	}
}

func TestNewCollector_ConflictingCollectorPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "zsr_requests_total",
		Help: "Something else",
	}))

	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
