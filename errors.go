package histo

import "github.com/cockroachdb/errors"

// Error kinds returned by histogram operations. Returned errors carry a
// specific message and are matched against these with errors.Is.
var (
	// ErrInvalidInput marks construction input that violates a documented
	// invariant: breaks that are not monotonically increasing, breaks handed
	// to the balancer that are not equidistant, an unknown breaks method, or
	// too few samples for a bandwidth rule.
	ErrInvalidInput = errors.New("histo: invalid input")

	// ErrOutOfRange marks a sample outside the histogram span or a bin index
	// that does not address an existing bin.
	ErrOutOfRange = errors.New("histo: out of range")

	// ErrOverflow marks an increment of a counter already at the maximum of
	// its type.
	ErrOverflow = errors.New("histo: count overflow")

	// ErrUnderflow marks a decrement of a counter already at zero.
	ErrUnderflow = errors.New("histo: count underflow")
)
