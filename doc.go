// Package ephyscore is the compute core behind an extracellular
// electrophysiology spike-sorting pipeline — the numeric work done
// between "raw recording on disk" and "a cluster label per detected
// event", with no UI, no storage format of its own, and no notion of
// an experiment beyond the arrays it's handed.
//
// Under the hood, everything is organized under independent
// subpackages, each owning one stage of the pipeline:
//
//	decode/   — reads RHD2000, RHD64 and OFPS binary recordings into samples
//	buffer/   — shape-checked typed N-D array wrapper (Array[T])
//	sosfilt/  — forward-backward biquad cascade filtering
//	detect/   — single-channel refractory-period threshold crossing
//	snippet/  — per-channel-group waveform extraction around detections
//	align/    — greedy nearest-neighbor pairing of two timestamp streams
//	linkage/  — sparse edge-vertex incidence graph, connected components
//	split/    — relabeling connected regions across tiled 1D/2D blocks
//	mask/     — Venn-diagram inclusion/exclusion mask over labels
//	spc/      — super-paramagnetic clustering of detected events
//
// Packages compose by passing plain slices and small option structs;
// the only import between them is split's use of linkage.Graph, so a
// caller assembles the pipeline stages it needs.
package ephyscore
