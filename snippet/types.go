package snippet

// Options configures Groups.
type Options struct {
	SLength   int     // Snippet length in samples.
	HiThr     float32 // Detection threshold.
	LoThr     float32 // Return threshold.
	ReturnN   int     // Consecutive below-threshold samples required to finalize.
	NChannels int     // Channels per group; must evenly divide data's column count.
}

// Result holds, per channel group, the peak timestamps and their
// corresponding flattened waveforms (channel-major within a waveform,
// then sample), plus the longest per-group list length.
type Result struct {
	Times     [][]int64
	Waveforms [][]float32
	MaxLen    int
}
