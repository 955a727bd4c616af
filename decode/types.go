package decode

// RHD2000Params describes the block layout of an RHD2000 recording, as
// derived from its header at a higher level than this package.
type RHD2000Params struct {
	HeaderOffset     int // Byte offset of the first data block.
	BytesPerBlock    int
	BytesAfterAmp    int // Bytes following the amplifier region in each block.
	SamplesPerBlock  int
	StartSample      int // Inclusive.
	StopSample       int // Exclusive.
	NChannels        int
	NAnalogChannels  int
	DigitalInEnabled bool
}

// RHD2000Result holds the four temporally aligned output streams of
// ReadRHD2000Batch. Time has length N; Amp is row-major N x NChannels;
// Analog is row-major N x NAnalogChannels; Digital has length N (empty
// when DigitalInEnabled is false).
type RHD2000Result struct {
	Time    []int64
	Amp     []float32
	Analog  []float32
	Digital []uint16
}

// RHD64Result holds the four temporally aligned output streams of
// ReadRHD64Batch. Amp is row-major N x 64; Acc is row-major N x 3.
type RHD64Result struct {
	Time    []int64
	Amp     []float32
	Acc     []float32
	Digital []uint16
}

// OFPSResult holds the two temporally aligned output streams of
// ReadOFPSBatch. Amp is row-major N x NChannels.
type OFPSResult struct {
	Time []int64
	Amp  []float32
}
