package spc

import "sort"

// coarsen finds the connected components of the graph formed by nk edges
// for which keep returns true, and relabels them into block/clusterSize so
// that cluster 0 is the largest component, cluster 1 the next largest, and
// so on. It returns the number of clusters found.
func coarsen(nk [][]int, keep func(i, k int) bool, block []uint32, clusterSize []uint32) int {
	n := len(nk)
	visited := make([]bool, n)
	var components [][]int

	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue = queue[:0]
		queue = append(queue, start)
		var comp []int
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			comp = append(comp, v)
			for k, nbr := range nk[v] {
				if !visited[nbr] && keep(v, k) {
					visited[nbr] = true
					queue = append(queue, nbr)
				}
			}
		}
		components = append(components, comp)
	}

	sort.SliceStable(components, func(a, b int) bool {
		return len(components[a]) > len(components[b])
	})

	for id := range clusterSize {
		clusterSize[id] = 0
	}
	for id, comp := range components {
		for _, v := range comp {
			block[v] = uint32(id)
		}
		if id < len(clusterSize) {
			clusterSize[id] = uint32(len(comp))
		}
	}
	return len(components)
}
