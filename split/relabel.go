package split

// Relabel applies a pointwise substitution: every labels[i] present as a
// key in labelMap is rewritten to the mapped value; all other entries
// are left untouched.
func Relabel(labels []int64, labelMap map[int64]int64) {
	for i, lb := range labels {
		if nlb, ok := labelMap[lb]; ok {
			labels[i] = nlb
		}
	}
}
