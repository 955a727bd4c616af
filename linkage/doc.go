// Package linkage implements the label-linkage graph: a sparse
// edge-vertex incidence matrix, in compressed sparse row (CSR) form,
// that relates integer cluster labels produced by independent,
// block-wise clustering runs.
//
// Graph is the substrate that stitches per-block labels into a single
// global labeling. Each row of the CSR represents one edge; the
// vertices incident to that edge are enumerated by the row's slice of
// Indices, with the parallel Data slice marking which incidences are
// currently "live". A real edge has exactly two live incidences in its
// row — liveness is always flipped for both incidences of an edge
// together, never independently.
//
//	Row 0: vertices {5, 7}, both live  -> edge {5, 7} exists
//	Row 1: vertices {5, 9}, both dead  -> edge {5, 9} was unlinked
//
// Connected-component queries treat the incidence matrix as a multigraph
// and traverse it with an explicit queue and seen-set — never recursion,
// since the graph is naturally cyclic and vertices are plain int64
// labels, not pointers with owned neighbor lists.
package linkage
