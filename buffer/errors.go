package buffer

import "errors"

var (
	// ErrShapeMismatch indicates an array's shape does not match the
	// shape required by the caller.
	ErrShapeMismatch = errors.New("buffer: shape mismatch")

	// ErrLengthMismatch indicates two related arrays do not have the
	// same length where a 1:1 correspondence is required.
	ErrLengthMismatch = errors.New("buffer: length mismatch")

	// ErrEmptyShape indicates a shape vector with a zero or negative
	// dimension where a positive dimension is required.
	ErrEmptyShape = errors.New("buffer: shape must have positive dimensions")
)
