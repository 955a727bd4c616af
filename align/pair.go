package align

// Pair finds a symmetric greedy index pairing between two strictly
// increasing timestamp streams t1, t2 such that for each returned pair
// (i, j), |t1[i]-t2[j]| <= maxDist. The returned index slices always
// have equal length.
//
// The algorithm assumes len(t1) <= len(t2), swapping its working copies
// internally (and the returned slices) when that does not hold: it
// advances through the shorter stream, and for each position scans the
// longer stream forward while its timestamp does not exceed the current
// one, tracking the closest candidate and the last scanned position; if
// the closest candidate is within tolerance it is paired, and the next
// scan resumes just past it.
func Pair(t1, t2 []int64, maxDist int64) ([]int, []int, error) {
	if maxDist <= 0 {
		return nil, nil, ErrNonPositiveMaxDist
	}

	times1, times2 := t1, t2
	reversed := false
	if len(t2) < len(t1) {
		times1, times2 = t2, t1
		reversed = true
	}
	n1, n2 := len(times1), len(times2)

	var idxs1, idxs2 []int
	i1, i2 := 0, 0

	for i1 < n1 && i2 < n2 {
		bestDist := absInt64(times1[i1] - times2[i2])
		bestI2 := i2

		for i2 < n2 && times2[i2] <= times1[i1] {
			d := absInt64(times1[i1] - times2[i2])
			if d < bestDist {
				bestDist = d
				bestI2 = i2
			}
			i2++
		}

		if bestI2 < n2 && bestDist <= maxDist {
			idxs1 = append(idxs1, i1)
			idxs2 = append(idxs2, bestI2)
		}

		i1++
		i2 = bestI2 + 1
	}

	if reversed {
		return idxs2, idxs1, nil
	}
	return idxs1, idxs2, nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
