package decode

import "errors"

var (
	// ErrInvalidRange indicates stop_sample occurs before start_sample.
	ErrInvalidRange = errors.New("decode: stop_sample must not occur before start_sample")
	// ErrInvalidBlockRange indicates the resolved start block does not
	// occur before the resolved stop block.
	ErrInvalidBlockRange = errors.New("decode: start block must occur before stop block")
	// ErrInconsistentDigitalIndex indicates the number of digital samples
	// read in a block did not match the number of amplifier samples read.
	ErrInconsistentDigitalIndex = errors.New("decode: digital index data inconsistent")
	// ErrInconsistentAuxRead indicates the buffer cursor did not advance
	// by exactly bytes_after_amp while reading the auxiliary region.
	ErrInconsistentAuxRead = errors.New("decode: inconsistent index after reading aux data")
	// ErrShortRead indicates a file did not contain enough bytes to
	// satisfy the requested range.
	ErrShortRead = errors.New("decode: short read")
)
