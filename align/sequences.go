package align

// Sequences pairs t1/t2 under maxDist and merges the paired values v1/v2
// into the flat row-major N x 2 aligned output, combining Pair and Merge
// into the single entry point most callers want.
func Sequences(t1, t2, v1, v2 []int64, maxDist, fill int64) ([]int64, error) {
	idxs1, idxs2, err := Pair(t1, t2, maxDist)
	if err != nil {
		return nil, err
	}
	return Merge(t1, t2, v1, v2, idxs1, idxs2, fill)
}
