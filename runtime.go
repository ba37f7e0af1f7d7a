package histo

import (
	"math"
	"runtime/metrics"

	"github.com/cockroachdb/errors"
)

// FromRuntimeMetrics builds a histogram from a runtime/metrics histogram,
// such as /sched/latencies:seconds. Unbounded first and last buckets are
// dropped so breaks stay finite and strictly increasing.
func FromRuntimeMetrics(rh *metrics.Float64Histogram) (*Histo, error) {
	buckets, counts := rh.Buckets, rh.Counts
	if len(buckets) != len(counts)+1 {
		return nil, errors.Mark(
			errors.Newf("histo: malformed runtime histogram: %d buckets for %d counts", len(buckets), len(counts)),
			ErrInvalidInput)
	}

	if len(buckets) > 1 && math.IsInf(buckets[0], -1) {
		buckets, counts = buckets[1:], counts[1:]
	}

	if len(buckets) > 1 && math.IsInf(buckets[len(buckets)-1], 1) {
		buckets, counts = buckets[:len(buckets)-1], counts[:len(counts)-1]
	}

	h, err := FromDataAndBreaks[uint64](nil, buckets)
	if err != nil {
		return nil, err
	}

	copy(h.Counts, counts)

	return h, nil
}
