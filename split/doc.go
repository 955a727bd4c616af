// Package split implements block-local label splitting, the operation
// that updates a linkage.Graph when a cluster label spanning a temporal
// block boundary needs to be cut in two.
//
// split_block_1d finds the connected component of the label being
// split, allocates a fresh label unused within the block, relabels the
// portion of the block on one side of a split index, and performs edge
// surgery on the linkage graph so the new label starts out disconnected.
// split_blocks_2d applies the same idea across a range of blocks and an
// arbitrary set of positions to relabel, allocating one fresh label per
// old label encountered and reusing it for the rest of the call.
package split
