package sosfilt

// FiltFilt applies the cascade described by sos (n_sections x 6, each
// row [b0,b1,b2,a0,a1,a2] in the scipy second-order-section convention)
// to x (N x M, row-major by sample) in place: a forward pass seeded from
// zi (n_sections x 2) over a reflected left/right padding of length
// padLen, followed by a backward pass seeded the same way from the
// right padding.
func FiltFilt(sos [][6]float32, zi [][2]float32, x [][]float32, padType PadType, padLen int) error {
	nSections := len(sos)
	if len(zi) != nSections {
		return ErrShapeMismatch
	}
	n := len(x)
	if n == 0 {
		return ErrShapeMismatch
	}
	m := len(x[0])
	for _, row := range x {
		if len(row) != m {
			return ErrShapeMismatch
		}
	}
	if n <= padLen {
		return ErrPadTooLarge
	}

	var sgn float32
	switch padType {
	case PadOdd:
		sgn = -1
	case PadEven:
		sgn = 1
	default:
		return ErrInvalidPadType
	}

	lExt := make([][]float32, padLen)
	rExt := make([][]float32, padLen)
	for i := range lExt {
		lExt[i] = make([]float32, m)
		rExt[i] = make([]float32, m)
	}
	ziState := make([][][2]float32, m)
	for c := range ziState {
		ziState[c] = make([][2]float32, nSections)
	}

	for c := 0; c < m; c++ {
		for i := 0; i < padLen; i++ {
			lExt[padLen-i-1][c] = x[i][c] * sgn
			rExt[i][c] = x[n-i-1][c] * sgn
		}
	}

	// Forward pass.
	for s := 0; s < nSections; s++ {
		for c := 0; c < m; c++ {
			ziState[c][s][0] = zi[s][0] * lExt[0][c]
			ziState[c][s][1] = zi[s][1] * lExt[0][c]
		}
	}
	runCascade(sos, ziState, lExt, 0, padLen, 1, m)
	runCascade(sos, ziState, x, 0, n, 1, m)
	runCascade(sos, ziState, rExt, 0, padLen, 1, m)

	// Backward pass.
	for s := 0; s < nSections; s++ {
		for c := 0; c < m; c++ {
			ziState[c][s][0] = zi[s][0] * rExt[padLen-1][c]
			ziState[c][s][1] = zi[s][1] * rExt[padLen-1][c]
		}
	}
	runCascade(sos, ziState, rExt, padLen-1, -1, -1, m)
	runCascade(sos, ziState, x, n-1, -1, -1, m)

	return nil
}

// runCascade drives the biquad cascade over buf[start : stop : step]
// (step is +1 or -1; stop is exclusive), cascading every section's
// output into the next section's input at each sample, with per-channel,
// per-section state carried in ziState across samples.
func runCascade(sos [][6]float32, ziState [][][2]float32, buf [][]float32, start, stop, step, m int) {
	nSections := len(sos)
	for c := 0; c < m; c++ {
		for i := start; i != stop; i += step {
			for s := 0; s < nSections; s++ {
				xi := buf[i][c]
				buf[i][c] = sos[s][0]*xi + ziState[c][s][0]
				ziState[c][s][0] = sos[s][1]*xi - sos[s][4]*buf[i][c] + ziState[c][s][1]
				ziState[c][s][1] = sos[s][2]*xi - sos[s][5]*buf[i][c]
			}
		}
	}
}
