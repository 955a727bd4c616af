package spc

// Run clusters the points described by the square distance matrix dists
// according to opts, sweeping temperature from opts.Tmin to opts.Tmax in
// steps of opts.Tstep. At every temperature it runs opts.Cycles Swendsen-Wang
// sweeps, discarding the first (1-SWfract) of them as burn-in, and reports
// the partition implied by thresholding each edge's post-burn-in cluster
// co-membership frequency against thN.
func Run(dists [][]float64, opts Options) (Result, error) {
	n := len(dists)
	if n == 0 {
		return Result{}, ErrEmptyDistanceMatrix
	}
	for _, row := range dists {
		if len(row) != n {
			return Result{}, ErrNonSquareDistanceMatrix
		}
	}
	if opts.K <= 0 {
		return Result{}, ErrNonPositiveK
	}
	if opts.K >= n {
		return Result{}, ErrTooManyNeighbors
	}
	if opts.Tmin > opts.Tmax {
		return Result{}, ErrInvalidTemperatureRange
	}
	if opts.Tstep <= 0 {
		return Result{}, ErrNonPositiveTstep
	}
	if opts.Cycles <= 0 {
		return Result{}, ErrNonPositiveCycles
	}

	nk := buildNeighborGraph(dists, opts.K, opts.MSTree)
	for _, row := range nk {
		if len(row) == 0 {
			return Result{}, ErrDisconnectedGraph
		}
	}
	kn := invertNeighbors(nk)
	j, nn := computeInteractions(dists, nk, kn)

	w := &workspace{
		n:   n,
		nk:  nk,
		kn:  kn,
		j:   j,
		nn:  nn,
		rng: newRNG(opts.Seed),
	}
	w.p = make([][]float64, n)
	w.bond = make([][]bool, n)
	w.corrN = make([][]uint32, n)
	for i := range nk {
		w.p[i] = make([]float64, len(nk[i]))
		w.bond[i] = make([]bool, len(nk[i]))
		w.corrN[i] = make([]uint32, len(nk[i]))
	}
	w.spin = make([]uint32, n)
	for i := range w.spin {
		w.spin[i] = uint32(w.rng.Intn(spcQ))
	}
	w.block = make([]uint32, n)
	w.clusterSize = make([]uint32, n)
	w.dgOldBlock = make([]uint32, n)
	w.thOldBlock = make([]uint32, n)

	burnIn := int(float64(opts.Cycles) * (1 - spcSWfract))
	measureSweeps := int(float64(opts.Cycles) * spcSWfract)

	var result Result
	for nT := 0; ; nT++ {
		t := opts.Tmin + float64(nT)*opts.Tstep
		if t > opts.Tmax {
			break
		}

		for i := range w.corrN {
			for k := range w.corrN[i] {
				w.corrN[i][k] = 0
			}
		}
		bondFreezeProbabilities(w, t)

		for it := 0; it < burnIn; it++ {
			setBond(w)
			nc := coarsening(w)
			newSpinConfig(w, nc)
		}

		nSweeps := 0
		for ncy := 0; ncy <= measureSweeps; ncy++ {
			setBond(w)
			nc := coarsening(w)
			newSpinConfig(w, nc)
			globalCorrelation(w)
			nSweeps++
		}

		directedGrowth(w, nSweeps)

		block := make([]uint32, n)
		copy(block, w.block)
		result.Temps = append(result.Temps, t)
		result.Assignments = append(result.Assignments, block)

		copy(w.dgOldBlock, w.block)
		copy(w.thOldBlock, w.block)
	}

	return result, nil
}
