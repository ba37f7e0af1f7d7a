package histo

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Tuning constants of the break balancer.
const (
	// biasToAddBin weights the drop-the-last-break decision in BalanceBreaks
	// toward keeping the break and growing the span instead; 1 is no bias.
	biasToAddBin = 0.8

	// epsFactorExact is the comparison tolerance for an edge that must land
	// exactly on a range boundary.
	epsFactorExact = 1

	// epsFactorEquidistant absorbs the drift accumulated by repeated width
	// additions when checking that breaks are equidistant.
	epsFactorEquidistant = 100
)

// BreaksFromRangeAndBins returns bins+1 equidistant edges covering
// [low, high]. bins must be at least 1.
func BreaksFromRangeAndBins[P constraints.Float](low, high P, bins int) []P {
	width := (high - low) / P(bins)
	breaks := make([]P, bins+1)
	for i := range breaks {
		breaks[i] = low + P(i)*width
	}
	return breaks
}

// BreaksFromRangeAndWidth returns fixed-width edges starting at low,
// appending while the next edge stays below high+width. The last edge e
// therefore satisfies high <= e < high+width. Returns nil if width is not
// positive.
func BreaksFromRangeAndWidth[P constraints.Float](low, high, width P) []P {
	if width <= 0 {
		return nil
	}
	var breaks []P
	limit := high + width
	for edge := low; edge < limit; edge += width {
		breaks = append(breaks, edge)
	}
	return breaks
}

// strictlyIncreasing reports whether every break is greater than its
// predecessor.
func strictlyIncreasing[P constraints.Float](breaks []P) bool {
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			return false
		}
	}
	return true
}

// equidistant reports whether all consecutive differences match the first
// one within epsFactorEquidistant machine epsilons.
func equidistant[P constraints.Float](breaks []P) bool {
	diff := breaks[1] - breaks[0]
	for i := 2; i < len(breaks); i++ {
		if !ApproxEqual(breaks[i]-breaks[i-1], diff, epsFactorEquidistant) {
			return false
		}
	}
	return true
}

// shiftBreaks moves every break by d.
func shiftBreaks[P constraints.Float](breaks []P, d P) {
	for i := range breaks {
		breaks[i] += d
	}
}

// shrinkOrExpandBreaks moves break i by i*d, rescaling the common width by d
// while keeping the first break in place.
func shrinkOrExpandBreaks[P constraints.Float](breaks []P, d P) {
	for i := range breaks {
		breaks[i] += P(i) * d
	}
}

// BalanceBreaks adjusts equidistant breaks so that the first lands on low
// and the last on high, changing the number of breaks when that fits better
// than rescaling. The adjustment, in order: shift the whole sequence onto
// low; drop the last break if the one before it is close enough to high
// (closer than biasToAddBin times the current overshoot) and widen the
// remaining bins to compensate; append breaks at the original width while
// the sequence still falls short of high; finally shrink all widths
// proportionally to pull the last break onto high.
//
// breaks is modified in place and must not be reused by the caller; use the
// returned slice. The second result reports whether anything was adjusted.
func BalanceBreaks[P constraints.Float](breaks []P, low, high P) ([]P, bool, error) {
	if len(breaks) < 2 {
		return nil, false, errors.Mark(
			errors.Newf("histo: balancing needs at least 2 breaks, got %d", len(breaks)),
			ErrInvalidInput)
	}
	if !equidistant(breaks) {
		return nil, false, errors.Mark(
			errors.Newf("histo: breaks are not equidistant: %v", breaks),
			ErrInvalidInput)
	}
	width := breaks[1] - breaks[0]
	if width <= 0 {
		return nil, false, errors.Mark(
			errors.Newf("histo: breaks width must be positive, got %v", width),
			ErrInvalidInput)
	}

	nbins := len(breaks) - 1
	diffLow := breaks[0] - low
	diffHigh := breaks[nbins] - high
	if ApproxEqual(diffLow, 0, epsFactorExact) && ApproxEqual(diffHigh, 0, epsFactorExact) {
		return breaks, false, nil
	}

	if !ApproxEqual(diffLow, 0, epsFactorExact) {
		shiftBreaks(breaks, -diffLow)
		diffHigh = breaks[nbins] - high
	}
	if ApproxEqual(diffHigh, 0, epsFactorExact) {
		return breaks, true, nil
	}

	// When the sequence overshoots high but its second-to-last break falls
	// short by clearly less, dropping the last break and widening the rest
	// beats rescaling the overshoot away.
	if nbins > 1 {
		diffHighBefore := breaks[nbins-1] - high
		if diffHighBefore < 0 && diffHigh > 0 && abs(diffHighBefore) < biasToAddBin*abs(diffHigh) {
			breaks = breaks[:nbins]
			nbins--
			shrinkOrExpandBreaks(breaks, -diffHighBefore/P(nbins))
			diffHigh = breaks[nbins] - high
			if ApproxEqual(diffHigh, 0, epsFactorExact) {
				return breaks, true, nil
			}
		}
	}

	// Still short of high: extend at the original width until covered.
	for diffHigh < 0 {
		nbins++
		breaks = append(breaks, low+P(nbins)*width)
		diffHigh = breaks[nbins] - high
	}
	if ApproxEqual(diffHigh, 0, epsFactorExact) {
		return breaks, true, nil
	}

	// Overshot: shrink all widths proportionally onto high.
	shrinkOrExpandBreaks(breaks, -diffHigh/P(nbins))
	return breaks, true, nil
}
