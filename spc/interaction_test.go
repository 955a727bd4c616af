package spc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeInteractionsSymmetric(t *testing.T) {
	dists := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	nk := buildNeighborGraph(dists, 1, true)
	kn := invertNeighbors(nk)
	j, nn := computeInteractions(dists, nk, kn)
	require.Greater(t, nn, 0.0)
	for i, row := range nk {
		for k, nbr := range row {
			require.Equal(t, j[i][k], j[nbr][kn[i][k]])
			require.Greater(t, j[i][k], 0.0)
		}
	}
}

func TestPrimMSTSpansAllPoints(t *testing.T) {
	dists := [][]float64{
		{0, 1, 5, 9},
		{1, 0, 3, 8},
		{5, 3, 0, 2},
		{9, 8, 2, 0},
	}
	edges := primMST(dists)
	require.Len(t, edges, 3)

	degree := make(map[int]int)
	for _, e := range edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	require.Len(t, degree, 4)
}
