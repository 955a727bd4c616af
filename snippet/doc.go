// Package snippet implements the hysteresis state machine that detects
// and extracts fixed-length waveform snippets across contiguous channel
// groups: a spike on any channel in a group triggers detection for the
// whole group, and the snippet is emitted once every channel in the
// group has stayed below a return threshold for return_n consecutive
// samples, centered on the group's peak sample.
package snippet
