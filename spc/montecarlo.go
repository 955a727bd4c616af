package spc

import "math"

// bondFreezeProbabilities recomputes, for the given temperature, the
// probability that a satisfied edge (its two endpoints share a spin) is
// frozen into a bond rather than cut. Unsatisfied edges are always cut;
// SetBond consults w.p only when spins agree.
func bondFreezeProbabilities(w *workspace, t float64) {
	for i, row := range w.j {
		for k, jik := range row {
			w.p[i][k] = 1 - math.Exp(-jik/t)
		}
	}
}

// setBond redraws every edge's frozen/cut state for one Monte Carlo sweep:
// an edge whose endpoints disagree is always cut; an edge whose endpoints
// agree is frozen with probability w.p[i][k]. Each edge is drawn once, from
// its lower-indexed endpoint, and the result mirrored to the higher one so
// both directions of the ragged structure agree.
func setBond(w *workspace) {
	for i, row := range w.nk {
		for k, nbr := range row {
			if nbr <= i {
				continue
			}
			frozen := w.spin[i] == w.spin[nbr] && w.rng.Float64() < w.p[i][k]
			w.bond[i][k] = frozen
			w.bond[nbr][w.kn[i][k]] = frozen
		}
	}
}

// coarsening recomputes w.block as the connected components of the
// currently frozen bonds, largest component first.
func coarsening(w *workspace) int {
	return coarsen(w.nk, func(i, k int) bool { return w.bond[i][k] }, w.block, w.clusterSize)
}

// newSpinConfig draws one fresh uniform Potts state per cluster and applies
// it to every point in that cluster, per Swendsen-Wang.
func newSpinConfig(w *workspace, nClusters int) {
	spins := make([]uint32, nClusters)
	for c := range spins {
		spins[c] = uint32(w.rng.Intn(spcQ))
	}
	for i, b := range w.block {
		w.spin[i] = spins[b]
	}
}

// globalCorrelation accumulates, for every edge, whether its endpoints
// currently share a cluster. Averaged over many post-burn-in sweeps this
// converges to each edge's cluster co-membership frequency.
func globalCorrelation(w *workspace) {
	for i, row := range w.nk {
		for k, nbr := range row {
			if w.block[i] == w.block[nbr] {
				w.corrN[i][k]++
			}
		}
	}
}

// directedGrowth derives the reported partition from the accumulated
// correlation counts: an edge survives into the final graph only if its
// endpoints co-clustered in more than thN of the nSweeps measured sweeps.
// The resulting components are numbered largest-first, as with coarsening.
func directedGrowth(w *workspace, nSweeps int) int {
	threshold := spcThN * float64(nSweeps)
	return coarsen(w.nk, func(i, k int) bool {
		return float64(w.corrN[i][k]) > threshold
	}, w.block, w.clusterSize)
}
