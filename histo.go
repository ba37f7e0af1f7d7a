// Package histo implements a one-dimensional histogram with
// automatically computed and balanced breaks, inspired by R's hist.
package histo

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Range bounds the span of a histogram's breaks.
type Range[P constraints.Float] struct {
	Low  P
	High P
}

// Histogram counts samples falling between consecutive breaks.
//
// P is the precision of the breaks, C the counter type. Breaks are strictly
// increasing and frame the bins: bin i covers [Breaks[i], Breaks[i+1]), and
// the last bin also includes its upper edge. Samples themselves are not
// retained.
//
// Fields are exported so counts can be read and manipulated directly when
// bulk speed matters; Increase, Decrease and SetCount are the checked
// alternatives. Methods do not lock: wrap the histogram with external
// synchronization to share it between goroutines.
type Histogram[P constraints.Float, C Count] struct {
	// Range is the span the breaks were balanced onto.
	Range Range[P]

	// Breaks holds Bins+1 strictly increasing bin edges.
	Breaks []P

	// Bins is the number of bins, len(Breaks)-1.
	Bins int

	// Counts holds one counter per bin.
	Counts []C

	// Name optionally labels the histogram in rendered and saved output.
	Name string
}

// Histo is the default instantiation: float64 breaks, uint64 counts.
type Histo = Histogram[float64, uint64]

// FromData builds a histogram spanning the extent of data, with breaks
// derived by method m and all samples counted. The counter type parameter
// comes first so the precision can be inferred from data:
//
//	h, err := histo.FromData[uint64](samples, histo.Scott)
func FromData[C Count, P constraints.Float](data []P, m Method) (*Histogram[P, C], error) {
	if len(data) == 0 {
		return nil, errors.Mark(errors.New("histo: no samples"), ErrInvalidInput)
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return FromDataAndRange[C](data, Range[P]{Low: lo, High: hi}, m)
}

// FromDataAndRange builds a histogram spanning r, with breaks derived from
// the sample variance of data by method m. Samples are then counted, so
// every one of them must fall within r.
func FromDataAndRange[C Count, P constraints.Float](data []P, r Range[P], m Method) (*Histogram[P, C], error) {
	breaks, err := computeBreaks(data, r, m)
	if err != nil {
		return nil, err
	}
	h := &Histogram[P, C]{Range: r, Breaks: breaks, Bins: len(breaks) - 1}
	h.ResetCounts()
	if err := h.FillCounts(data); err != nil {
		return nil, err
	}
	return h, nil
}

// FromDataAndBreaks builds a histogram over explicit breaks, which must be
// strictly increasing; the range derives from the outer breaks. The breaks
// slice is copied.
func FromDataAndBreaks[C Count, P constraints.Float](data, breaks []P) (*Histogram[P, C], error) {
	if len(breaks) < 2 {
		return nil, errors.Mark(
			errors.Newf("histo: need at least 2 breaks, got %d", len(breaks)),
			ErrInvalidInput)
	}
	if !strictlyIncreasing(breaks) {
		return nil, errors.Mark(
			errors.Newf("histo: breaks are not monotonically increasing: %v", breaks),
			ErrInvalidInput)
	}
	h := &Histogram[P, C]{
		Range:  Range[P]{Low: breaks[0], High: breaks[len(breaks)-1]},
		Breaks: slices.Clone(breaks),
		Bins:   len(breaks) - 1,
	}
	h.ResetCounts()
	if err := h.FillCounts(data); err != nil {
		return nil, err
	}
	return h, nil
}

// New builds a float64/uint64 histogram spanning the extent of data, using
// Scott's rule.
func New(data []float64) (*Histo, error) {
	return FromData[uint64](data, Scott)
}

// NewWithRange builds a float64/uint64 histogram spanning [low, high],
// using Scott's rule.
func NewWithRange(data []float64, low, high float64) (*Histo, error) {
	return FromDataAndRange[uint64](data, Range[float64]{Low: low, High: high}, Scott)
}

// NewWithBreaks builds a float64/uint64 histogram over explicit breaks.
func NewWithBreaks(data, breaks []float64) (*Histo, error) {
	return FromDataAndBreaks[uint64](data, breaks)
}

// ResetCounts sizes Counts to the number of bins and zeroes every counter.
func (h *Histogram[P, C]) ResetCounts() {
	h.Counts = make([]C, h.Bins)
}

// FillCounts counts every sample into its bin. It stops at the first sample
// that falls outside the breaks and returns its lookup error; counts
// recorded for earlier samples are kept.
func (h *Histogram[P, C]) FillCounts(data []P) error {
	for _, v := range data {
		i, err := h.IndexFromValue(v)
		if err != nil {
			return err
		}
		h.Counts[i]++
	}
	return nil
}

// IndexFromValue returns the index of the bin containing v. Bins are
// half-open [Breaks[i], Breaks[i+1]) except the last, which also contains
// its upper edge within epsFactorExact tolerance. A value that does not
// compare within the breaks, NaN included, fails with ErrOutOfRange.
func (h *Histogram[P, C]) IndexFromValue(v P) (int, error) {
	last := h.Breaks[h.Bins]
	if !(v >= h.Breaks[0] && (v < last || ApproxEqual(v, last, epsFactorExact))) {
		return 0, errors.Mark(
			errors.Newf("histo: value %v is outside breaks [%v, %v]", v, h.Breaks[0], last),
			ErrOutOfRange)
	}
	i := sort.Search(h.Bins, func(i int) bool { return v < h.Breaks[i+1] })
	if i == h.Bins {
		// v sits on (or within tolerance above) the last break.
		i = h.Bins - 1
	}
	return i, nil
}
