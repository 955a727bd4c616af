package split

import (
	"fmt"

	"github.com/ephys2/ephyscore/linkage"
)

// SplitBlock1D splits the connected component containing label at
// index within a single block, rewriting blockLabels in place and
// performing the necessary edge surgery on graph so the newly
// allocated label starts out disconnected.
//
// blockStart/blockEnd describe the absolute position range covered by
// blockLabels; index is absolute (not block-relative), and also
// determines which incident edges straddle the split. Positions listed
// in preservedIndices (absolute) are never rewritten, even if their
// label lies in the split component.
//
// It returns the map from old labels to the newly allocated label for
// every label actually rewritten. If no unused label exists within the
// block, the split degenerates to edge surgery only: existing straddling
// edges in the component are deleted, and label_map is empty.
func SplitBlock1D(
	blockLabels []int64,
	blockStart, blockEnd int,
	index int,
	label int64,
	graph *linkage.Graph,
	preservedIndices map[int]struct{},
) (map[int64]int64, error) {
	blockIndex := index - blockStart
	blockSize := blockEnd - blockStart
	if blockSize <= 0 {
		return nil, ErrEmptyBlock
	}
	if blockIndex < 0 || blockIndex >= len(blockLabels) {
		return nil, fmt.Errorf("%w: index %d resolves to block-relative %d, block has %d labels", ErrIndexOutOfBounds, index, blockIndex, len(blockLabels))
	}

	cc := graph.FindConnectedComponent(label)
	nextLabel, found := FindNextLabel(blockLabels, 0, blockSize, int64(blockStart), int64(blockEnd))

	labelMap := make(map[int64]int64)
	if found {
		for i := blockIndex; i < len(blockLabels); i++ {
			lb := blockLabels[i]
			if _, inCC := cc[lb]; !inCC {
				continue
			}
			if _, preserved := preservedIndices[i+blockStart]; preserved {
				continue
			}
			labelMap[lb] = nextLabel
			blockLabels[i] = nextLabel
		}
		graph.UnlinkNodes(map[int64]struct{}{nextLabel: {}})
	}

	surgerEdges(graph, cc, index, nextLabel, found)
	return labelMap, nil
}

// surgerEdges walks every real (two-live-incidence) edge whose ordered
// endpoints (u,v), u<=v, are both in cc and straddle index (u < index
// <= v): if a new label was allocated, u is translated to it; otherwise
// the edge is deleted outright.
func surgerEdges(graph *linkage.Graph, cc map[int64]struct{}, index int, nextLabel int64, haveNextLabel bool) {
	data := graph.Data()
	indices := graph.Indices()
	indptr := graph.Indptr()

	for r := 0; r < graph.Rows(); r++ {
		lo, hi := indptr[r], indptr[r+1]
		if hi-lo != 2 {
			continue
		}
		jU, jV := lo, lo+1
		if !data[jU] || !data[jV] {
			continue
		}
		u, v := indices[jU], indices[jV]
		if _, ok := cc[u]; !ok {
			continue
		}
		if _, ok := cc[v]; !ok {
			continue
		}
		if v < u {
			u, v = v, u
			jU, jV = jV, jU
		}
		if int64(index) <= u || v < int64(index) {
			continue
		}
		if haveNextLabel {
			indices[jU] = nextLabel
		} else {
			data[jU] = false
			data[jV] = false
		}
	}
}
