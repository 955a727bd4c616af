package linkage

import "errors"

var (
	// ErrLengthMismatch indicates Data and Indices do not have the same
	// length, or two caller-supplied parallel arrays disagree in length.
	ErrLengthMismatch = errors.New("linkage: length mismatch")

	// ErrIndptrNotSorted indicates Indptr is not nondecreasing.
	ErrIndptrNotSorted = errors.New("linkage: indptr must be nondecreasing")

	// ErrIndptrShape indicates Indptr's length does not match Shape's
	// row count plus one.
	ErrIndptrShape = errors.New("linkage: indptr length must equal rows+1")

	// ErrIndexOutOfRange indicates an entry of Indices falls outside
	// [0, Shape[1]).
	ErrIndexOutOfRange = errors.New("linkage: vertex index out of range")

	// ErrEmptyComponent indicates a connected-component query was asked
	// for the minimum label of an empty component (should not occur:
	// a node is always a member of its own component).
	ErrEmptyComponent = errors.New("linkage: connected component is empty")
)
