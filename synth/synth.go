// Package synth provides the raw ingredients of a test signal: seeded
// Gaussian noise and complex tones.
package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source draws standard normal values from an explicitly seeded generator.
type Source struct {
	seed uint64
	norm distuv.Normal
}

// New returns a standard normal source seeded with seed.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		norm: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(seed),
		},
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Real fills dst with independent N(0, 1) draws.
func (s *Source) Real(dst []float64) {
	for i := range dst {
		dst[i] = s.norm.Rand()
	}
}

// Complex fills dst with unit-variance complex white noise. Real and
// imaginary parts are independent N(0, 1) draws scaled by 1/sqrt(2).
func (s *Source) Complex(dst []complex128) {
	for i := range dst {
		re := s.norm.Rand()
		im := s.norm.Rand()
		dst[i] = complex(re/math.Sqrt2, im/math.Sqrt2)
	}
}
