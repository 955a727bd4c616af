package spc

import "math"

// primMST returns the N-1 edges of a minimum spanning tree of the complete
// graph implied by dists, grown outward from point 0 with the classic
// dense O(N^2) variant of Prim's algorithm: no adjacency structure is
// needed since the input distance matrix is already complete.
func primMST(dists [][]float64) [][2]int {
	n := len(dists)
	if n < 2 {
		return nil
	}

	dist := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = 0
	}
	dist[0] = 0
	inTree[0] = true
	for v := 1; v < n; v++ {
		dist[v] = dists[0][v]
	}

	edges := make([][2]int, 0, n-1)
	for iter := 1; iter < n; iter++ {
		best, bestD := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && dist[v] < bestD {
				bestD, best = dist[v], v
			}
		}
		inTree[best] = true
		edges = append(edges, [2]int{parent[best], best})
		for v := 0; v < n; v++ {
			if !inTree[v] && dists[best][v] < dist[v] {
				dist[v] = dists[best][v]
				parent[v] = best
			}
		}
	}
	return edges
}
