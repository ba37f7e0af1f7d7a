package histo

import (
	"math"

	"github.com/cockroachdb/errors"
)

// maxCount returns the largest value the counter type can hold.
func maxCount[C Count]() C {
	var m C
	m-- // unsigned counters wrap around to their maximum
	if m > 0 {
		return m
	}
	if p, ok := any(&m).(*float32); ok {
		*p = math.MaxFloat32
		return m
	}
	f := math.MaxFloat64
	return C(f)
}

// Increase adds one to the counter of bin index. Fails with ErrOverflow if
// the counter is at the maximum of its type. The index is not checked and
// panics like any slice access when out of bounds.
func (h *Histogram[P, C]) Increase(index int) error {
	if h.Counts[index] == maxCount[C]() {
		return errors.Mark(
			errors.Newf("histo: count at index %d is at the counter maximum", index),
			ErrOverflow)
	}
	h.Counts[index]++
	return nil
}

// Decrease subtracts one from the counter of bin index. Fails with
// ErrUnderflow if the counter is at or below zero.
func (h *Histogram[P, C]) Decrease(index int) error {
	if h.Counts[index] <= 0 {
		return errors.Mark(
			errors.Newf("histo: count at index %d would drop below zero", index),
			ErrUnderflow)
	}
	h.Counts[index]--
	return nil
}

// SetCount stores value as the counter of bin index. Fails with ErrOutOfRange
// if index does not address a bin, or if value does not fit the counter type
// (possible with float counters, which can express negatives and infinities).
func (h *Histogram[P, C]) SetCount(index int, value C) error {
	if index < 0 || index >= h.Bins {
		return errors.Mark(
			errors.Newf("histo: index %d is outside %d bins", index, h.Bins),
			ErrOutOfRange)
	}
	if value < 0 || value > maxCount[C]() {
		return errors.Mark(
			errors.Newf("histo: count value %v does not fit the counter type", value),
			ErrOutOfRange)
	}
	h.Counts[index] = value
	return nil
}

// Total returns the sum of all counters.
func (h *Histogram[P, C]) Total() C {
	var t C
	for _, c := range h.Counts {
		t += c
	}
	return t
}
