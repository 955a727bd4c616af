package linkage

// Graph is a sparse edge-vertex incidence matrix in compressed sparse
// row (CSR) form. Row r represents edge r; Indices[Indptr[r]:Indptr[r+1]]
// enumerates the vertices incident to that edge, and the parallel slice
// Data marks which of those incidences are currently live. A real edge
// has exactly two live incidences in its row.
//
// The four backing slices are caller-owned: Graph wraps them in place
// and every mutating method writes back into the same slices, never
// reallocating Data or Indices. Vertex identity is a plain int64 label;
// labels need not be contiguous.
type Graph struct {
	data    []bool
	indices []int64
	indptr  []int64
	shape   [2]int
}

// New validates and wraps the four CSR buffers as a Graph. It does not
// copy data, indices, or indptr — Graph mutates them in place.
//
// Preconditions: len(data) == len(indices); indptr is nondecreasing and
// has length shape[0]+1; every entry of indices lies in [0, shape[1]).
func New(data []bool, indices []int64, indptr []int64, shape [2]int) (*Graph, error) {
	if len(data) != len(indices) {
		return nil, ErrLengthMismatch
	}
	if len(indptr) != shape[0]+1 {
		return nil, ErrIndptrShape
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return nil, ErrIndptrNotSorted
		}
	}
	for _, idx := range indices {
		if idx < 0 || int(idx) >= shape[1] {
			return nil, ErrIndexOutOfRange
		}
	}
	return &Graph{data: data, indices: indices, indptr: indptr, shape: shape}, nil
}

// Data returns the live-incidence flags backing the graph.
func (g *Graph) Data() []bool { return g.data }

// Indices returns the vertex-index buffer backing the graph.
func (g *Graph) Indices() []int64 { return g.indices }

// Indptr returns the row-pointer buffer backing the graph.
func (g *Graph) Indptr() []int64 { return g.indptr }

// Shape returns (rows, vertex-space size).
func (g *Graph) Shape() [2]int { return g.shape }

// Rows returns the number of edge rows in the incidence matrix.
func (g *Graph) Rows() int { return g.shape[0] }

// row returns the slice of Indices/Data belonging to edge row r.
func (g *Graph) row(r int) (indices []int64, data []bool) {
	lo, hi := g.indptr[r], g.indptr[r+1]
	return g.indices[lo:hi], g.data[lo:hi]
}
