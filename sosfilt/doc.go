// Package sosfilt applies a cascaded second-order-section (biquad) IIR
// filter forward then backward along the sample axis of a buffer, with
// reflected padding at each end to suppress transient edge effects. It
// is a direct, faithful port of a well-known reference filter-then-
// filter-backwards implementation and is not reworked algorithmically.
package sosfilt
