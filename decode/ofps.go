package decode

import "encoding/binary"

// ReadOFPSBatch parses the [startSample, stopSample) range of a pair of
// one-file-per-signal recordings: timePath holds one int32 per sample,
// ampPath holds nChannels int16 samples per sample, both row-major.
func ReadOFPSBatch(timePath, ampPath string, startSample, stopSample, nChannels int) (OFPSResult, error) {
	if stopSample < startSample {
		return OFPSResult{}, ErrInvalidRange
	}

	n := stopSample - startSample
	m := nChannels

	timeBuf, err := readFileRange(timePath, startSample*4, n*4)
	if err != nil {
		return OFPSResult{}, err
	}
	ampBuf, err := readFileRange(ampPath, startSample*m*2, m*n*2)
	if err != nil {
		return OFPSResult{}, err
	}

	res := OFPSResult{
		Time: make([]int64, n),
		Amp:  make([]float32, m*n),
	}

	timeBufI, ampBufI := 0, 0
	timeI, ampI := 0, 0
	for sampleI := 0; sampleI < n; sampleI++ {
		res.Time[timeI] = int64(int32(binary.LittleEndian.Uint32(timeBuf[timeBufI:])))
		timeBufI += 4
		timeI++
		for channelI := 0; channelI < m; channelI++ {
			res.Amp[ampI] = 0.195 * float32(int16(binary.LittleEndian.Uint16(ampBuf[ampBufI:])))
			ampBufI += 2
			ampI++
		}
	}

	return res, nil
}
