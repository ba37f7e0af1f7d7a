package histo

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// BinCenters returns the midpoint of every bin.
func (h *Histogram[P, C]) BinCenters() []P {
	centers := make([]P, h.Bins)
	for i := range centers {
		centers[i] = h.Breaks[i] + (h.Breaks[i+1]-h.Breaks[i])/2
	}
	return centers
}

// Mean returns the inner product of bin centers and counts divided by the
// number of bins. Note the divisor: this is the historical definition kept
// for compatibility, not the count-weighted sample mean.
func (h *Histogram[P, C]) Mean() float64 {
	centers := h.BinCenters()
	var sum float64
	for i, c := range h.Counts {
		sum += float64(centers[i]) * float64(c)
	}
	return sum / float64(h.Bins)
}

// Percentile returns the upper break of the first bin at which the running
// count reaches percent of the total.
func (h *Histogram[P, C]) Percentile(percent float64) P {
	if h.Bins == 0 {
		return 0
	}
	target := percent * float64(h.Total()) / 100
	var cum float64
	for i, c := range h.Counts {
		cum += float64(c)
		if cum >= target {
			return h.Breaks[i+1]
		}
	}
	return h.Breaks[h.Bins]
}

// NormalizeByArea returns a float-counted copy of h with every count divided
// by the total area sum(Counts[i] * binWidth(i)), so the bin areas of the
// result sum to one.
func NormalizeByArea[P constraints.Float, C Count](h *Histogram[P, C]) *Histogram[P, P] {
	var area P
	for i, c := range h.Counts {
		area += P(c) * abs(h.Breaks[i+1]-h.Breaks[i])
	}
	n := &Histogram[P, P]{
		Range:  h.Range,
		Breaks: slices.Clone(h.Breaks),
		Bins:   h.Bins,
		Counts: make([]P, h.Bins),
		Name:   h.Name,
	}
	for i, c := range h.Counts {
		n.Counts[i] = P(c) / area
	}
	return n
}
