package histo

import (
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Method selects how breaks are computed from data and a range.
type Method int

// Scott computes the bin width from the sample standard deviation,
// w = 3.5*s/n^(1/3) (Scott, Biometrika 1979).
const Scott Method = iota

func (m Method) String() string {
	if m == Scott {
		return "scott"
	}
	return "method(" + strconv.Itoa(int(m)) + ")"
}

// computeBreaks derives breaks for r from data with the chosen method and
// balances them onto the range boundaries.
func computeBreaks[P constraints.Float](data []P, r Range[P], m Method) ([]P, error) {
	switch m {
	case Scott:
		return scottBreaks(data, r)
	default:
		return nil, errors.Mark(
			errors.Newf("histo: unknown breaks method %d", int(m)),
			ErrInvalidInput)
	}
}

// scottBreaks lays out equidistant breaks over r at the Scott bandwidth and
// balances them.
func scottBreaks[P constraints.Float](data []P, r Range[P]) ([]P, error) {
	if !(r.High >= r.Low) {
		return nil, errors.Mark(
			errors.Newf("histo: invalid range [%v, %v]", r.Low, r.High),
			ErrInvalidInput)
	}
	if len(data) < 2 {
		return nil, errors.Mark(
			errors.Newf("histo: Scott's rule needs at least 2 samples, got %d", len(data)),
			ErrInvalidInput)
	}
	v := Variance[P](data)
	width := P(3.5) * P(math.Sqrt(float64(v))) / P(math.Cbrt(float64(len(data))))
	if !(width > 0) {
		return nil, errors.Mark(
			errors.Newf("histo: Scott width %v is not positive (sample variance %v)", width, v),
			ErrInvalidInput)
	}
	bins := int(math.Ceil(float64((r.High - r.Low) / width)))
	breaks := make([]P, bins+1)
	for i := range breaks {
		breaks[i] = r.Low + P(i)*width
	}
	breaks, _, err := BalanceBreaks(breaks, r.Low, r.High)
	return breaks, err
}
