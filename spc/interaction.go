package spc

import "math"

// computeInteractions derives the Potts coupling strength of every edge in
// the neighbor graph from the underlying distances: edges between points
// that are close relative to the graph's average edge length get a strong
// interaction, long edges get a weak one. It also returns nn, the graph's
// average degree, used to keep interaction strengths comparable across
// runs with different K or point counts.
func computeInteractions(dists [][]float64, nk, kn [][]int) (j [][]float64, nn float64) {
	n := len(nk)
	j = make([][]float64, n)
	var sumDist float64
	var nEdges int
	for i := 0; i < n; i++ {
		j[i] = make([]float64, len(nk[i]))
		for k, nbr := range nk[i] {
			j[i][k] = dists[i][nbr]
			if nbr > i {
				sumDist += j[i][k]
				nEdges++
			}
		}
	}
	if nEdges == 0 {
		return j, 0
	}
	chd := sumDist / float64(nEdges)
	nn = 2 * float64(nEdges) / float64(n)

	for i := 0; i < n; i++ {
		for k, nbr := range nk[i] {
			if nbr <= i {
				continue
			}
			dd := j[i][k] * j[nbr][kn[i][k]] / (chd * chd)
			val := math.Exp(-dd/2) / nn
			j[i][k] = val
			j[nbr][kn[i][k]] = val
		}
	}
	return j, nn
}
