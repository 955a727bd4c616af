// Package align pairs two strictly increasing timestamped event streams
// under a maximum temporal distance and merges them, timestamp-ordered,
// into a single two-column sequence with a fill value standing in for
// unmatched positions.
package align
