package spc

import "errors"

var (
	// ErrEmptyDistanceMatrix indicates a zero-point input.
	ErrEmptyDistanceMatrix = errors.New("spc: distance matrix must have at least one point")
	// ErrNonSquareDistanceMatrix indicates a ragged or non-square distance matrix.
	ErrNonSquareDistanceMatrix = errors.New("spc: distance matrix must be square")
	// ErrTooManyNeighbors indicates K is not strictly less than the point count.
	ErrTooManyNeighbors = errors.New("spc: K must be less than the number of points")
	// ErrNonPositiveK indicates K <= 0.
	ErrNonPositiveK = errors.New("spc: K must be positive")
	// ErrInvalidTemperatureRange indicates Tmin > Tmax.
	ErrInvalidTemperatureRange = errors.New("spc: Tmin must not exceed Tmax")
	// ErrNonPositiveTstep indicates Tstep <= 0, which would otherwise loop forever.
	ErrNonPositiveTstep = errors.New("spc: Tstep must be positive")
	// ErrNonPositiveCycles indicates Cycles <= 0.
	ErrNonPositiveCycles = errors.New("spc: Cycles must be positive")
	// ErrDisconnectedGraph indicates the mutual-KNN (plus MST, if requested)
	// graph has an isolated point with no edges at all.
	ErrDisconnectedGraph = errors.New("spc: neighbor graph has an isolated point")
)
