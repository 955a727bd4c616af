// Package detect implements the single-channel refractory threshold
// detector: a spike is emitted whenever |x[t]| crosses above a threshold,
// after which detection is suppressed for a fixed number of samples.
package detect
