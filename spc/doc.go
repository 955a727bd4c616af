// Package spc implements super-paramagnetic clustering: a Potts-model
// Swendsen-Wang Monte Carlo simulation over a mutual-K-nearest-neighbor
// graph (optionally fused with a minimum spanning tree), swept across a
// range of temperatures. At each temperature, bonds between mutually
// agreeing neighbors are stochastically frozen, the frozen-bond graph's
// connected components are coarsened into Potts clusters, and cluster
// co-membership statistics accumulated over many sweeps are thresholded
// into the reported partition.
//
// Run owns all of its working state (neighbor lists, interaction
// strengths, bonds, correlation accumulators) for the duration of a
// single call. When a seed is supplied, the random source is local to
// that call as well; without a seed, draws come from the process-global
// math/rand source, whose state carries over between calls.
package spc
