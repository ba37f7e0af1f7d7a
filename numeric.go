package histo

import "golang.org/x/exp/constraints"

// Number covers the sample types a histogram can ingest.
type Number interface {
	constraints.Integer | constraints.Float
}

// Count covers the counter types a histogram can carry: unsigned integers
// for plain counting, floats for normalized histograms.
type Count interface {
	constraints.Unsigned | constraints.Float
}

const (
	eps32 = 1.0 / (1 << 23)
	eps64 = 1.0 / (1 << 52)
)

// epsilon returns the machine epsilon of P, the gap between 1 and the next
// representable value.
func epsilon[P constraints.Float]() P {
	// 1+eps32/2 is representable in float64 but collapses to 1 in float32.
	if P(1)+eps32/2 == P(1) {
		return eps32
	}
	return eps64
}

// ApproxEqual reports whether a and b differ by at most factor machine
// epsilons of P. A factor of 1 is the strictest comparison that still
// tolerates a single rounding step.
func ApproxEqual[P constraints.Float](a, b, factor P) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= factor*epsilon[P]()
}

func abs[P constraints.Float](v P) P {
	if v < 0 {
		return -v
	}
	return v
}

// Values converts numeric samples to the precision used by a histogram's
// breaks, so integer data can feed a float histogram:
//
//	h, err := histo.New(histo.Values[float64](ints))
func Values[P constraints.Float, S Number](data []S) []P {
	out := make([]P, len(data))
	for i, v := range data {
		out[i] = P(v)
	}
	return out
}

// Variance returns the unbiased sample variance of data, accumulated in a
// single pass with Welford's recurrence in precision P.
//
// The divisor is n-1, so the result is NaN for fewer than two samples;
// callers vetting data for a bandwidth rule must check the length first.
func Variance[P constraints.Float, S Number](data []S) P {
	var m, s P
	for i, x := range data {
		v := P(x)
		mPrev := m
		m += (v - mPrev) / P(i+1)
		s += (v - mPrev) * (v - m)
	}
	n := len(data) - 1
	if n < 0 {
		n = 0
	}
	return s / P(n)
}
