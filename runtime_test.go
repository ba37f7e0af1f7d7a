package histo_test

import (
	"math"
	"runtime/metrics"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/histo-go"
)

func TestFromRuntimeMetrics(t *testing.T) {
	rh := &metrics.Float64Histogram{
		Counts:  []uint64{1, 4, 2, 7},
		Buckets: []float64{math.Inf(-1), 0, 0.5, 1, math.Inf(1)},
	}

	h, err := histo.FromRuntimeMetrics(rh)
	require.NoError(t, err)

	require.Equal(t, []float64{0, 0.5, 1}, h.Breaks)
	require.Equal(t, []uint64{4, 2}, h.Counts)
	require.Equal(t, histo.Range[float64]{Low: 0, High: 1}, h.Range)
}

func TestFromRuntimeMetricsMalformed(t *testing.T) {
	_, err := histo.FromRuntimeMetrics(&metrics.Float64Histogram{
		Counts:  []uint64{1},
		Buckets: []float64{0},
	})
	require.True(t, errors.Is(err, histo.ErrInvalidInput))
}

func TestFromRuntimeMetricsLive(t *testing.T) {
	samples := []metrics.Sample{{Name: "/sched/latencies:seconds"}}
	metrics.Read(samples)

	if samples[0].Value.Kind() != metrics.KindFloat64Histogram {
		t.Skip("runtime histogram unavailable")
	}

	h, err := histo.FromRuntimeMetrics(samples[0].Value.Float64Histogram())
	require.NoError(t, err)
	require.Positive(t, h.Bins)
	require.Len(t, h.Counts, h.Bins)
}
