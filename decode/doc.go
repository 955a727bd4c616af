// Package decode parses the raw binary recording formats produced by
// Intan-style acquisition hardware into temporally aligned time/amplifier/
// auxiliary/digital arrays.
//
// Three layouts are supported:
//
//   - RHD2000: block-structured, column-major amplifier samples, a
//     quarter-rate analog auxiliary stream, and an optional digital word.
//   - RHD64: a fixed 64-channel, two-chip format with 176-byte samples and
//     a four-phase interleaved accelerometer.
//   - OFPS (one-file-per-signal): a flat int32 time.dat paired with a flat
//     int16 amplifier.dat, both row-major.
//
// All three report amplifier voltage in microvolts using the fixed
// conversion v = 0.195*(sample-32768) (RHD2000/RHD64) or v = 0.195*sample
// (OFPS, where the ADC sample is already signed). Every read is exact: no
// resampling, no interpolation, and any internal inconsistency in the
// source bytes is reported as an error rather than silently tolerated.
package decode
