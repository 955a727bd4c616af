package align

import "errors"

var (
	// ErrNonPositiveMaxDist indicates max_dist <= 0.
	ErrNonPositiveMaxDist = errors.New("align: max_dist must be positive")
	// ErrLengthMismatch indicates a times/values pair disagree on length.
	ErrLengthMismatch = errors.New("align: times and values must have equal length")
	// ErrPairIndexMismatch indicates Pair returned index slices of
	// unequal length, an internal consistency failure.
	ErrPairIndexMismatch = errors.New("align: paired index sizes were inconsistent")
)
