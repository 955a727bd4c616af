package spc

import "sort"

// rejectedNeighbor marks a topK candidate that failed the mutuality check.
// The original implementation tested this condition as `MNV[i][j] < 0`
// against an unsigned array, which can never be true; this module keeps
// the candidate table in a signed []int scratch array specifically so the
// sentinel comparison is meaningful.
const rejectedNeighbor = -1

// buildNeighborGraph derives the mutual-K-nearest-neighbor graph from a
// square distance matrix: point i and point j are joined only if each is
// among the other's K closest points. When mstree is set, the edges of a
// minimum spanning tree over the same distances are unioned in, guaranteeing
// every point has at least one edge regardless of how the KNN graph came
// out.
//
// The returned nk[i] is sorted ascending and duplicate-free.
func buildNeighborGraph(dists [][]float64, k int, mstree bool) [][]int {
	n := len(dists)
	topK := make([][]int, n)
	for i := 0; i < n; i++ {
		cand := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				cand = append(cand, j)
			}
		}
		sort.Slice(cand, func(a, b int) bool {
			da, db := dists[i][cand[a]], dists[i][cand[b]]
			if da != db {
				return da < db
			}
			return cand[a] < cand[b]
		})
		if len(cand) > k {
			cand = cand[:k]
		}
		topK[i] = cand
	}

	inTopK := func(i, j int) bool {
		for _, c := range topK[i] {
			if c == j {
				return true
			}
		}
		return false
	}

	// Reject every candidate that does not point back: point i accepts
	// point j only if j's own top-K list also contains i. Rejections are
	// written into a fresh accepted table rather than mutating topK in
	// place, so that later rows being checked always see every row's
	// original candidate list, independent of processing order.
	accepted := make([][]int, n)
	for i := 0; i < n; i++ {
		accepted[i] = make([]int, len(topK[i]))
		for pos, cand := range topK[i] {
			if inTopK(cand, i) {
				accepted[i][pos] = cand
			} else {
				accepted[i][pos] = rejectedNeighbor
			}
		}
	}
	topK = accepted

	neighbors := make([]map[int]struct{}, n)
	for i := range neighbors {
		neighbors[i] = make(map[int]struct{})
	}
	for i := 0; i < n; i++ {
		for _, j := range topK[i] {
			if j != rejectedNeighbor {
				neighbors[i][j] = struct{}{}
				neighbors[j][i] = struct{}{}
			}
		}
	}

	if mstree {
		for _, e := range primMST(dists) {
			neighbors[e[0]][e[1]] = struct{}{}
			neighbors[e[1]][e[0]] = struct{}{}
		}
	}

	nk := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, len(neighbors[i]))
		for j := range neighbors[i] {
			row = append(row, j)
		}
		sort.Ints(row)
		nk[i] = row
	}
	return nk
}

// invertNeighbors builds kn such that kn[i][k] is the position of i within
// nk[nk[i][k]], the inverse-index structure used to update a symmetric
// per-edge quantity from either endpoint in O(1).
func invertNeighbors(nk [][]int) [][]int {
	kn := make([][]int, len(nk))
	for i, row := range nk {
		kn[i] = make([]int, len(row))
		for k, j := range row {
			pos := sort.SearchInts(nk[j], i)
			kn[i][k] = pos
		}
	}
	return kn
}
