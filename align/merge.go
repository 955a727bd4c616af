package align

// Merge interleaves two value streams, timestamp-ordered, around a set
// of paired indices produced by Pair: between consecutive paired
// boundaries unpaired elements from either stream are emitted in
// timestamp order as (v1[i], fill) or (fill, v2[j]) rows, ties favoring
// stream 1; each paired boundary emits (v1[I1], v2[I2]). The result is a
// flat row-major N x 2 array of int64 values.
func Merge(t1, t2, v1, v2 []int64, idxs1, idxs2 []int, fill int64) ([]int64, error) {
	if len(idxs1) != len(idxs2) {
		return nil, ErrPairIndexMismatch
	}
	if len(t1) != len(v1) || len(t2) != len(v2) {
		return nil, ErrLengthMismatch
	}

	var vals []int64
	i1, i2 := 0, 0

	for k := 0; k < len(idxs1); k++ {
		I1, I2 := idxs1[k], idxs2[k]
		mergesortInto(&vals, t1, t2, v1, v2, i1, i2, I1, I2, fill)
		vals = append(vals, v1[I1], v2[I2])
		i1 = I1 + 1
		i2 = I2 + 1
	}
	mergesortInto(&vals, t1, t2, v1, v2, i1, i2, len(t1), len(t2), fill)

	return vals, nil
}

func mergesortInto(vals *[]int64, t1, t2, v1, v2 []int64, i1, i2, stop1, stop2 int, fill int64) {
	for i1 < stop1 && i2 < stop2 {
		if t1[i1] <= t2[i2] {
			*vals = append(*vals, v1[i1], fill)
			i1++
		} else {
			*vals = append(*vals, fill, v2[i2])
			i2++
		}
	}
	for i1 < stop1 {
		*vals = append(*vals, v1[i1], fill)
		i1++
	}
	for i2 < stop2 {
		*vals = append(*vals, fill, v2[i2])
		i2++
	}
}
