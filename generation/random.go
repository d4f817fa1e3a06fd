package generation

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource is the uniform randomness the generator depends on.
// Int is inclusive on both ends, Real excludes max.
type RandomSource interface {
	Int(min, max int) int
	Real(min, max float64) float64
}

// Random is the default RandomSource backed by math/rand
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom creates a source seeded from the clock
func NewRandom() *Random {
	return NewSeededRandom(time.Now().UnixNano())
}

// NewSeededRandom creates a reproducible source
func NewSeededRandom(seed int64) *Random {
	return &Random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (r *Random) SetSeed(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
	r.seed = seed
}

// Seed returns the seed the source was last initialised with
func (r *Random) Seed() int64 {
	return r.seed
}

// Int returns a uniform integer in [min, max]
func (r *Random) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Real returns a uniform float in [min, max)
func (r *Random) Real(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

// DiscardableFloat draws an integer-stepped float from [min, max].
// The value is floor(u*(max-min+1) + min) with u uniform in [0,1), so for a
// non-integral max the result can be floor(max)+1, one step past max.
func DiscardableFloat(src RandomSource, min, max float64) float64 {
	return math.Floor(src.Real(0, 1)*(max-min+1) + min)
}
