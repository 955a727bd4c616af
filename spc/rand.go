package spc

import "math/rand"

// globalRand adapts the package-level math/rand source to rngSource, used
// when a run is not seeded. math/rand's top-level functions are safe for
// concurrent use, unlike a bare *rand.Rand.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

func newRNG(seed *int64) rngSource {
	if seed == nil {
		return globalRand{}
	}
	return rand.New(rand.NewSource(*seed))
}
