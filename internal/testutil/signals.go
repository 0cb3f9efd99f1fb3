package testutil

import "math/rand"

// RandomComponents returns length uniformly distributed values in
// [-amplitude, amplitude) drawn from a fixed seed, for property tests that
// need reproducible vector components.
func RandomComponents(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomIntegers returns length integers in [-limit, limit] drawn from a
// fixed seed.
func RandomIntegers(seed int64, limit, length int) []int {
	out := make([]int, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*limit+1) - limit
	}
	return out
}
