package spc

// Options configures a clustering run.
type Options struct {
	// Tmin, Tmax, Tstep describe the temperature sweep: Tmin is the first
	// temperature measured, Tmax the last (inclusive, up to floating-point
	// step accumulation), and Tstep the increment. Tstep must be positive.
	Tmin, Tmax, Tstep float64
	// Cycles is the number of Swendsen-Wang sweeps performed at each
	// temperature; the first (1-SWfract) of them are discarded as burn-in.
	Cycles int
	// K is the number of nearest neighbors considered per point when
	// building the mutual-KNN graph.
	K int
	// MSTree additionally fuses a minimum spanning tree into the
	// neighbor graph, guaranteeing overall connectivity.
	MSTree bool
	// Seed, if non-nil, makes the run's Monte Carlo draws reproducible.
	// If nil, the process-global random source is used.
	Seed *int64
}

// Result holds the temperature sweep's output: for each measured
// temperature, the cluster assignment of every point.
type Result struct {
	// Temps[i] is the i-th measured temperature.
	Temps []float64
	// Assignments[i][p] is the cluster id of point p at Temps[i].
	// Cluster ids are dense, starting at 0, ordered by descending size.
	Assignments [][]uint32
}

// Potts-model and Swendsen-Wang constants fixed by the clustering method
// itself, not exposed as tuning knobs.
const (
	spcQ       = 20  // number of Potts spin states.
	spcSWfract = 0.8 // fraction of cycles treated as post-burn-in measurement.
	spcThN     = 0.5 // correlation ratio threshold for the final partition.
)

// workspace holds all per-run mutable state: the neighbor graph, the
// interaction strengths derived from it, and the Monte Carlo bookkeeping
// threaded through every temperature in the sweep.
type workspace struct {
	n int

	nk [][]int     // nk[i] = ascending sorted neighbor indices of point i.
	kn [][]int     // kn[i][k] = position of i within nk[nk[i][k]].
	j  [][]float64 // j[i][k] = interaction strength of edge (i, nk[i][k]).
	nn float64     // average node degree, used to scale interactions.

	p     [][]float64 // p[i][k] = bond-freeze probability at the current T.
	bond  [][]bool    // bond[i][k] = whether the edge is currently frozen.
	corrN [][]uint32  // corrN[i][k] = sweeps in which i, nk[i][k] co-clustered.

	spin  []uint32 // spin[i] = current Potts state of point i.
	block []uint32 // block[i] = current Swendsen-Wang cluster id of point i.

	clusterSize []uint32 // scratch buffer reused by coarsening passes.

	dgOldBlock []uint32 // block assignment from the previous temperature.
	thOldBlock []uint32 // directed-growth assignment from the previous temperature.

	rng rngSource
}

// rngSource is the subset of *math/rand.Rand used by the Monte Carlo
// routines, abstracted so that Run can fall back to the package-global
// source when no seed is supplied without allocating a *rand.Rand.
type rngSource interface {
	Intn(n int) int
	Float64() float64
}
