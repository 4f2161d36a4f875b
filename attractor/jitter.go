package attractor

import (
	"math/rand/v2"
	"time"
)

// Jitter supplies the small perturbations fed into each step.
type Jitter interface {
	Next() float64
}

// ZeroJitter always returns 0, which makes a run exactly repeatable.
type ZeroJitter struct{}

func (ZeroJitter) Next() float64 { return 0 }

// RandomJitter draws uniformly from [0, Scale).
type RandomJitter struct {
	Scale float64
	rng   *rand.Rand
}

// NewRandomJitter seeds from the wall clock, so runs differ.
func NewRandomJitter(scale float64) *RandomJitter {
	seed := uint64(time.Now().UnixNano())
	return &RandomJitter{
		Scale: scale,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (j *RandomJitter) Next() float64 {
	return j.Scale * j.rng.Float64()
}
