package mask

import "fmt"

// Apply evaluates the Venn diagram venn against each label, writing
// true into out[i] iff every term in venn is satisfied by labels[i].
// Terms are evaluated in order and short-circuit on the first failure.
func Apply(venn []Term, labels []int64, out []bool) error {
	if len(labels) != len(out) {
		return fmt.Errorf("%w: labels has length %d, mask has length %d", ErrLengthMismatch, len(labels), len(out))
	}
	for i, label := range labels {
		value := true
		for _, term := range venn {
			if !term.satisfies(label) {
				value = false
				break
			}
		}
		out[i] = value
	}
	return nil
}
