package split

import (
	"testing"

	"github.com/ephys2/ephyscore/linkage"
	"github.com/stretchr/testify/require"
)

func buildEdges(t *testing.T, vertexSpace int, edges [][2]int64) *linkage.Graph {
	t.Helper()
	var data []bool
	var idx []int64
	indptr := []int64{0}
	for _, e := range edges {
		data = append(data, true, true)
		idx = append(idx, e[0], e[1])
		indptr = append(indptr, int64(len(idx)))
	}
	g, err := linkage.New(data, idx, indptr, [2]int{len(edges), vertexSpace})
	require.NoError(t, err)
	return g
}

func TestFindNextLabel(t *testing.T) {
	labels := []int64{0, 2, 3}
	lb, ok := FindNextLabel(labels, 0, 3, 0, 5)
	require.True(t, ok)
	require.Equal(t, int64(1), lb)

	_, ok = FindNextLabel([]int64{0, 1, 2}, 0, 3, 0, 3)
	require.False(t, ok)
}

func TestRelabel(t *testing.T) {
	labels := []int64{1, 2, 3, 1}
	Relabel(labels, map[int64]int64{1: 9})
	require.Equal(t, []int64{9, 2, 3, 9}, labels)
}

// TestSplitDoesNotMerge verifies spec.md §8's "split does not merge"
// property: labels left of the split that stayed in the component are
// never equal to labels rewritten to the right.
func TestSplitDoesNotMerge(t *testing.T) {
	// Label 0 (a component of its own: the graph has no edges) fills all
	// four positions of one block; split at index 2: positions [2,3]
	// should move to a fresh label while [0,1] stay at label 0.
	g := buildEdges(t, 10, nil)
	blockLabels := []int64{0, 0, 0, 0}
	labelMap, err := SplitBlock1D(blockLabels, 0, 4, 2, 0, g, nil)
	require.NoError(t, err)
	require.NotEmpty(t, labelMap)

	left := map[int64]bool{blockLabels[0]: true, blockLabels[1]: true}
	right := map[int64]bool{blockLabels[2]: true, blockLabels[3]: true}
	for l := range left {
		require.False(t, right[l], "label %d present on both sides of the split", l)
	}
}

func TestSplitBlock1DPreservedIndices(t *testing.T) {
	g := buildEdges(t, 10, nil)
	blockLabels := []int64{0, 0, 0, 0}
	preserved := map[int]struct{}{3: {}}
	labelMap, err := SplitBlock1D(blockLabels, 0, 4, 2, 0, g, preserved)
	require.NoError(t, err)
	require.NotEmpty(t, labelMap)
	require.Equal(t, int64(0), blockLabels[3], "preserved index must not be rewritten")
}

func TestSplitBlock1DEdgeSurgeryDeletesStraddlingEdge(t *testing.T) {
	// Component {0,3} with a real edge between 0 and 3. No unused label
	// exists in [0,4), so the split degenerates to edge deletion.
	g := buildEdges(t, 4, [][2]int64{{0, 3}})
	blockLabels := []int64{0, 1, 2, 3}
	_, err := SplitBlock1D(blockLabels, 0, 4, 2, 0, g, nil)
	require.NoError(t, err)
	require.Equal(t, map[int64]struct{}{0: {}}, g.FindConnectedComponent(0))
}

func TestSplitBlock1DOutOfBounds(t *testing.T) {
	g := buildEdges(t, 10, nil)
	blockLabels := []int64{0, 0}
	_, err := SplitBlock1D(blockLabels, 0, 2, 10, 0, g, nil)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestSplitBlocks2D(t *testing.T) {
	g := buildEdges(t, 20, nil)
	labels := []int64{0, 0, 0, 0, 0, 0}
	// Two blocks of 3: [0,3), [3,6). Relabel absolute positions 1 and 4.
	labelMap, err := SplitBlocks2D(labels, 0, 6, 3, map[int]struct{}{1: {}, 4: {}}, 0, g)
	require.NoError(t, err)
	require.NotEmpty(t, labelMap)
	require.NotEqual(t, int64(0), labels[1])
	require.NotEqual(t, int64(0), labels[4])
	require.Equal(t, int64(0), labels[0])
	require.Equal(t, int64(0), labels[2])
}

func TestSplitBlocks2DNoBlocks(t *testing.T) {
	g := buildEdges(t, 10, nil)
	_, err := SplitBlocks2D([]int64{}, 0, 0, 3, nil, 0, g)
	require.ErrorIs(t, err, ErrNoBlocks)
}
