package linkage

import "fmt"

// FilterByCC returns data[i] for every i whose labels[i] belongs to the
// connected component containing node.
func (g *Graph) FilterByCC(node int64, labels []int64, data []int64) ([]int64, error) {
	if len(labels) != len(data) {
		return nil, fmt.Errorf("%w: labels has length %d, data has length %d", ErrLengthMismatch, len(labels), len(data))
	}
	cc := g.FindConnectedComponent(node)
	filtered := make([]int64, 0, len(data))
	for i, label := range labels {
		if _, ok := cc[label]; ok {
			filtered = append(filtered, data[i])
		}
	}
	return filtered, nil
}
