package decode

import "encoding/binary"

const (
	rhd64NChips          = 2
	rhd64ChannelsPerChip = 32
	rhd64NChannels       = rhd64NChips * rhd64ChannelsPerChip
	rhd64BytesPerSample  = 176
	rhd64NAccChannels    = 3
)

// ReadRHD64Batch parses the [startSample, stopSample) range of a FAST
// RHD64 recording at filepath: 64 amplifier channels across two
// interleaved chips, plus a four-phase-interleaved accelerometer triplet
// and a digital bitmask, all at one sample per 176-byte record.
func ReadRHD64Batch(filepath string, startSample, stopSample int) (RHD64Result, error) {
	if stopSample < startSample {
		return RHD64Result{}, ErrInvalidRange
	}

	n := stopSample - startSample
	bufSize := n * rhd64BytesPerSample
	bufOffset := startSample * rhd64BytesPerSample

	buf, err := readFileRange(filepath, bufOffset, bufSize)
	if err != nil {
		return RHD64Result{}, err
	}

	res := RHD64Result{
		Time:    make([]int64, n),
		Amp:     make([]float32, rhd64NChannels*n),
		Acc:     make([]float32, rhd64NAccChannels*n),
		Digital: make([]uint16, n),
	}

	var accBuffer [rhd64NAccChannels]float32
	bufI := 0
	ampTI := 0
	accI := 0
	quadI := startSample % 4
	accStarted := quadI == 1

	for sampleI := 0; sampleI < n; sampleI++ {
		bufI += 8 // header

		res.Time[ampTI] = int64(int32(binary.LittleEndian.Uint32(buf[bufI:])))
		ampTI++
		bufI += 4

		bufI += 4 // unused
		bufI += 2 // VDD, temp

		if quadI > 0 && accStarted {
			u := binary.LittleEndian.Uint16(buf[bufI:])
			accBuffer[quadI-1] = 3.74e-5 * (float32(u) - 32768)
			for quadI == 3 && accI < sampleI {
				copy(res.Acc[accI*rhd64NAccChannels:], accBuffer[:])
				accI++
			}
		}
		bufI += 2

		bufI += 4 // unused

		ampSectionStart := bufI
		ampI := sampleI * rhd64NChannels
		for chipI := 0; chipI < rhd64NChips; chipI++ {
			chipStart := ampSectionStart + chipI*2
			for channelI := 0; channelI < rhd64ChannelsPerChip; channelI++ {
				off := chipStart + channelI*rhd64NChips*2
				u := binary.LittleEndian.Uint16(buf[off:])
				res.Amp[ampI] = 0.195 * (float32(u) - 32768)
				ampI++
			}
		}
		bufI += 2 * rhd64NChannels

		bufI += 20 // unused

		res.Digital[sampleI] = binary.LittleEndian.Uint16(buf[bufI:])
		bufI += 4

		quadI = (quadI + 1) % 4
		accStarted = accStarted || quadI == 1
	}

	return res, nil
}
