package mask

import "errors"

// ErrLengthMismatch indicates labels and an output mask do not have the
// same length.
var ErrLengthMismatch = errors.New("mask: labels and mask must have the same length")
