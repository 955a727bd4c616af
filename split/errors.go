package split

import "errors"

var (
	// ErrEmptyBlock indicates block_end <= block_start.
	ErrEmptyBlock = errors.New("split: block is empty")

	// ErrIndexOutOfBounds indicates the split index does not fall
	// within the block being split.
	ErrIndexOutOfBounds = errors.New("split: index out of bounds")

	// ErrNoBlocks indicates a 2D split was requested over zero blocks.
	ErrNoBlocks = errors.New("split: no blocks to split")

	// ErrBlockCountMismatch indicates the block partition does not
	// cover the labels array supplied for a 2D split.
	ErrBlockCountMismatch = errors.New("split: number of labels does not match number of blocks")
)
