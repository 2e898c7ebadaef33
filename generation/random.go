package generation

import (
	"math/rand"
	"time"
)

// Rand is the random source threaded through every generation stage.
// *rand.Rand satisfies it; a level is reproducible as long as the same
// seeded source is passed in and nothing else draws from it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand creates a seeded random source for reproducible levels
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeed returns a seed derived from the current time
func NewTimeSeed() int64 {
	return time.Now().UnixNano()
}

// rangeInt returns a random value in [min, max). An empty range yields min.
func rangeInt(rng Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min)
}

// randomSliceIndex picks a uniform index into a sequence of length n
func randomSliceIndex(rng Rand, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return rng.Intn(n), true
}
