package split

import (
	"github.com/ephys2/ephyscore/linkage"
)

// SplitBlocks2D re-labels units across a range of fixed-size blocks
// according to an inclusion criterion: within the connected component of
// label, every position (absolute index, relative to blocksStart) that
// appears in indices gets a fresh label, allocated once per old label
// and memoized for the remainder of the call. Newly created labels are
// then unlinked from graph.
//
// A fresh label is allocated at most once per distinct old label across
// the *entire* call, not per block: the first block in which an old
// label is encountered picks the replacement (scoped to be unused
// within that block), and every later occurrence of the same old label
// — even in a different block — reuses that cached replacement without
// re-checking uniqueness against the later block. This mirrors the
// reference implementation's single call-scoped cache.
//
// It returns the map from old label to newly allocated label for every
// rewrite actually performed. If no unused label exists in the block
// where an old label is first encountered, that old label is left as-is
// for the rest of the call (mirroring the reference implementation's
// silent no-op in that case).
func SplitBlocks2D(
	labels []int64,
	blocksStart, blocksEnd int,
	blockSize int,
	indices map[int]struct{},
	label int64,
	graph *linkage.Graph,
) (map[int64]int64, error) {
	n := len(labels)
	nBlocks := (blocksEnd - blocksStart) / blockSize
	if nBlocks <= 0 {
		return nil, ErrNoBlocks
	}
	if nBlocks*blockSize < n {
		return nil, ErrBlockCountMismatch
	}

	cc := graph.FindConnectedComponent(label)
	newLabels := make(map[int64]struct{})
	labelMap := make(map[int64]int64)
	cacheLabelMap := make(map[int64]*int64)

	for i := 0; i < nBlocks; i++ {
		j1 := i * blockSize
		j2 := j1 + blockSize
		if j2 > n {
			j2 = n
		}
		blockStart := int64(blocksStart + j1)
		blockEnd := int64(blocksStart + j2)

		for j := j1; j < j2; j++ {
			lb := labels[j]
			lbIndex := j + blocksStart
			if _, inCC := cc[lb]; !inCC {
				continue
			}
			if _, needsRelabel := indices[lbIndex]; !needsRelabel {
				continue
			}

			cached, seen := cacheLabelMap[lb]
			if !seen {
				newLb, found := FindNextLabel(labels, j1, j2, blockStart, blockEnd)
				if found {
					cacheLabelMap[lb] = &newLb
					newLabels[newLb] = struct{}{}
					labelMap[lb] = newLb
					labels[j] = newLb
				} else {
					cacheLabelMap[lb] = nil
				}
				continue
			}
			if cached != nil {
				labels[j] = *cached
			}
		}
	}

	graph.UnlinkNodes(newLabels)
	return labelMap, nil
}
