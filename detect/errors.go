package detect

import "errors"

var (
	// ErrNonPositiveThreshold indicates thr <= 0.
	ErrNonPositiveThreshold = errors.New("detect: threshold must be positive")
	// ErrNegativeRefractory indicates refr < 0.
	ErrNegativeRefractory = errors.New("detect: refractory period must be nonnegative")
	// ErrLengthMismatch indicates time and data have different lengths.
	ErrLengthMismatch = errors.New("detect: time and data must have equal length")
)
