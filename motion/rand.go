package motion

import "math/rand/v2"

// NewRand returns a deterministic generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newEntropyRand returns a generator seeded from the runtime's global source.
func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Range is an inclusive scalar interval.
type Range struct {
	Min, Max float64
}

// Sample returns a uniformly distributed value between Min and Max.
func (r Range) Sample(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return Lerp(r.Min, r.Max, rng.Float64())
}

// VectorRange is an inclusive per-axis interval between two vectors.
type VectorRange struct {
	Min, Max Vector2
}

// Sample draws each axis independently between Min and Max.
func (r VectorRange) Sample(rng *rand.Rand) Vector2 {
	return Vector2{
		X: Lerp(r.Min.X, r.Max.X, rng.Float64()),
		Y: Lerp(r.Min.Y, r.Max.Y, rng.Float64()),
	}
}
