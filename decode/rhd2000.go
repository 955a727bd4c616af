package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ReadRHD2000Batch parses the [StartSample, StopSample) range of an
// RHD2000 recording at filepath according to params, returning time in
// samples, amplifier data in microvolts, analog auxiliary data in volts
// (upsampled to the amplifier rate by sample-and-hold), and the raw
// digital bitmask per sample.
func ReadRHD2000Batch(filepath string, params RHD2000Params) (RHD2000Result, error) {
	if params.StopSample < params.StartSample {
		return RHD2000Result{}, ErrInvalidRange
	}

	samplesPerBlock := params.SamplesPerBlock
	startBlock := params.StartSample / samplesPerBlock
	startOffset := params.StartSample % samplesPerBlock
	stopBlock := params.StopSample/samplesPerBlock + 1
	stopOffset := params.StopSample % samplesPerBlock
	if stopOffset == 0 && stopBlock-1 > startBlock {
		// StopSample falls on a block boundary: the last block read is the
		// one holding sample StopSample-1, read to its end.
		stopBlock--
		stopOffset = samplesPerBlock
	}
	if startBlock >= stopBlock {
		return RHD2000Result{}, ErrInvalidBlockRange
	}

	n := params.StopSample - params.StartSample
	m := params.NChannels
	ma := params.NAnalogChannels
	md := 0
	if params.DigitalInEnabled {
		md = 1
	}
	gap := params.BytesAfterAmp - (md*2)*samplesPerBlock - 2*ma*(samplesPerBlock/4)

	nBlocks := stopBlock - startBlock
	bufSize := nBlocks * params.BytesPerBlock
	bufOffset := params.HeaderOffset + startBlock*params.BytesPerBlock

	buf, err := readFileRange(filepath, bufOffset, bufSize)
	if err != nil {
		return RHD2000Result{}, err
	}

	res := RHD2000Result{
		Time:   make([]int64, n),
		Amp:    make([]float32, m*n),
		Analog: make([]float32, ma*n),
	}
	if md > 0 {
		res.Digital = make([]uint16, n)
	}

	bufI := 4 * startOffset
	ampTI := 0
	digitalI := 0
	sampleIStart := startOffset
	sampleIStop := samplesPerBlock
	var analogValue float32

	for blockI := 0; blockI < nBlocks; blockI++ {
		if blockI == nBlocks-1 {
			sampleIStop = stopOffset
		} else {
			sampleIStop = samplesPerBlock
		}

		for sampleI := sampleIStart; sampleI < sampleIStop; sampleI++ {
			res.Time[ampTI] = int64(int32(binary.LittleEndian.Uint32(buf[bufI:])))
			ampTI++
			bufI += 4
		}
		bufI += (samplesPerBlock - sampleIStop) * 4

		for channelI := 0; channelI < m; channelI++ {
			bufI += sampleIStart * 2
			for sampleI := sampleIStart; sampleI < sampleIStop; sampleI++ {
				ampI := (blockI*samplesPerBlock+sampleI-startOffset)*m + channelI
				u := binary.LittleEndian.Uint16(buf[bufI:])
				res.Amp[ampI] = 0.195 * (float32(u) - 32768)
				bufI += 2
			}
			bufI += (samplesPerBlock - sampleIStop) * 2
		}

		oldBufI := bufI

		if ma > 0 {
			for channelI := 0; channelI < ma; channelI++ {
				for sampleI := 0; sampleI < samplesPerBlock; sampleI++ {
					if sampleI%4 == 0 {
						u := binary.LittleEndian.Uint16(buf[bufI:])
						analogValue = 3.74e-5 * float32(u)
						bufI += 2
					}
					if sampleI >= sampleIStart && sampleI < sampleIStop {
						analogI := (blockI*samplesPerBlock+sampleI-startOffset)*ma + channelI
						res.Analog[analogI] = analogValue
					}
				}
			}
		}

		bufI += gap

		if md > 0 {
			bufI += sampleIStart * 2
			for sampleI := sampleIStart; sampleI < sampleIStop; sampleI++ {
				res.Digital[digitalI] = binary.LittleEndian.Uint16(buf[bufI:])
				digitalI++
				bufI += 2
			}
			bufI += (samplesPerBlock - sampleIStop) * 2
			if digitalI != ampTI {
				return RHD2000Result{}, ErrInconsistentDigitalIndex
			}
		}

		if oldBufI+params.BytesAfterAmp != bufI {
			return RHD2000Result{}, ErrInconsistentAuxRead
		}

		sampleIStart = 0
	}

	return res, nil
}

func readFileRange(filepath string, offset, size int) ([]byte, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShortRead, filepath, err)
	}
	return buf, nil
}
