package sosfilt

import "errors"

var (
	// ErrPadTooLarge indicates padLen >= the number of samples.
	ErrPadTooLarge = errors.New("sosfilt: pad_len must be smaller than the number of samples")
	// ErrShapeMismatch indicates sos/zi disagree in section count, or x's
	// rows are not all the same width.
	ErrShapeMismatch = errors.New("sosfilt: sos, zi and x shapes are inconsistent")
	// ErrInvalidPadType indicates an unrecognized PadType value.
	ErrInvalidPadType = errors.New("sosfilt: pad_type must be PadOdd or PadEven")
)
