package snippet

import "errors"

var (
	// ErrNonPositiveHiThr indicates hi_thr <= 0.
	ErrNonPositiveHiThr = errors.New("snippet: hi_thr must be positive")
	// ErrNonPositiveLoThr indicates lo_thr <= 0.
	ErrNonPositiveLoThr = errors.New("snippet: lo_thr must be positive")
	// ErrIncompleteGroups indicates the channel count is not a whole
	// multiple of n_channels.
	ErrIncompleteGroups = errors.New("snippet: data did not receive a whole number of channel groups")
	// ErrShapeMismatch indicates time and data disagree on sample count.
	ErrShapeMismatch = errors.New("snippet: time and data must agree on sample count")
)
