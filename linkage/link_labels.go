package linkage

import "fmt"

// LinkLabels writes, for each label in unlinked, the numeric minimum of
// its connected component into the parallel linked slice. Connected
// components are memoized per encountered label so each distinct
// component is only walked once.
func (g *Graph) LinkLabels(unlinked []int64, linked []int64) error {
	if len(unlinked) != len(linked) {
		return fmt.Errorf("%w: unlinked has length %d, linked has length %d", ErrLengthMismatch, len(unlinked), len(linked))
	}

	labelMap := make(map[int64]int64, len(unlinked))
	for i, label := range unlinked {
		if min, ok := labelMap[label]; ok {
			linked[i] = min
			continue
		}
		cc := g.FindConnectedComponent(label)
		min := minLabel(cc)
		for v := range cc {
			labelMap[v] = min
		}
		linked[i] = min
	}
	return nil
}
