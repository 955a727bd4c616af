// Package buffer defines the narrow array-interchange contract of
// ephys2core: a typed, contiguous, row-major N-D array plus its shape.
//
// Kernels do not reshape their inputs or outputs; the shapes documented
// on each exported function are preconditions, not suggestions. Array
// holds that contract as a thin generic wrapper with shape/length
// checks. No kernel package in this module imports it: each kernel takes
// concrete slices at its public boundary ([]int64, []float32, []uint16,
// ...), per the one-kernel-per-dtype rule, and checks its own lengths.
//
// There is no zero-copy capsule or ownership-transfer machinery here:
// the host-runtime interchange shim is an external collaborator outside
// this module's scope. Array is a plain Go value; callers own what they
// pass in and receive what kernels return by ordinary Go semantics.
package buffer
