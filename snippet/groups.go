package snippet

// Groups runs the per-channel-group hysteresis snippeting state machine
// over data, a row-major N x M buffer aligned with time. Channels are
// partitioned into contiguous groups of opts.NChannels; a spike on any
// channel in a group triggers detection for the whole group, and the
// waveform is finalized once every channel has stayed below opts.LoThr
// for opts.ReturnN consecutive samples. Finalization is dropped (but
// state still resets) when the peak sample is too close to either edge
// of data to take a full window.
func Groups(time []int64, data []float32, m int, opts Options) (Result, error) {
	if opts.HiThr <= 0 {
		return Result{}, ErrNonPositiveHiThr
	}
	if opts.LoThr <= 0 {
		return Result{}, ErrNonPositiveLoThr
	}
	if opts.NChannels <= 0 || m%opts.NChannels != 0 {
		return Result{}, ErrIncompleteGroups
	}
	n := len(time)
	if m*n != len(data) {
		return Result{}, ErrShapeMismatch
	}

	t := m / opts.NChannels
	snipLeft := opts.SLength / 2
	snipRight := opts.SLength - snipLeft

	detected := make([]bool, t)
	returned := make([]int, t)
	peakVals := make([]float32, t)
	peakTimes := make([]int, t)

	res := Result{
		Times:     make([][]int64, t),
		Waveforms: make([][]float32, t),
	}

	at := func(sampleI, chanI int) float32 { return data[sampleI*m+chanI] }

	for sampleI := 0; sampleI < n; sampleI++ {
		for ti := 0; ti < t; ti++ {
			cg := ti * opts.NChannels

			if detected[ti] {
				below := true
				var max float32
				for chanI := cg; chanI < cg+opts.NChannels; chanI++ {
					v := abs32(at(sampleI, chanI))
					below = below && v < opts.LoThr
					if v > max {
						max = v
					}
				}
				if max > peakVals[ti] {
					peakVals[ti] = max
					peakTimes[ti] = sampleI
				}
				if below {
					returned[ti]++
					if returned[ti] >= opts.ReturnN {
						peakI := peakTimes[ti]
						if peakI > snipLeft-1 && peakI < n-snipRight {
							waveform := make([]float32, 0, opts.NChannels*opts.SLength)
							for chanI := cg; chanI < cg+opts.NChannels; chanI++ {
								for wi := peakI - snipLeft; wi < peakI+snipRight; wi++ {
									waveform = append(waveform, at(wi, chanI))
								}
							}
							res.Waveforms[ti] = append(res.Waveforms[ti], waveform...)
							res.Times[ti] = append(res.Times[ti], time[peakI])
						}
						detected[ti] = false
						returned[ti] = 0
						peakVals[ti] = 0
					}
				} else {
					returned[ti] = 0
				}
			} else {
				above := false
				var max float32
				for chanI := 0; chanI < opts.NChannels; chanI++ {
					v := abs32(at(sampleI, cg+chanI))
					above = above || v > opts.HiThr
					if v > max {
						max = v
					}
				}
				if above {
					detected[ti] = true
					peakVals[ti] = max
					peakTimes[ti] = sampleI
				}
			}
		}
	}

	for ti := 0; ti < t; ti++ {
		if l := len(res.Times[ti]); l > res.MaxLen {
			res.MaxLen = l
		}
	}

	return res, nil
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
