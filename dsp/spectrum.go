package dsp

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// minMagnitude keeps 20*log10 finite for an exactly zero bin.
const minMagnitude = math.SmallestNonzeroFloat64

// Spectrum converts complex DFT bins to a log-magnitude spectrum.
// It holds scratch buffers sized for one block and is not safe for
// concurrent use.
type Spectrum struct {
	size int
	re   []float64
	im   []float64
	mag  []float64
}

// NewSpectrum will set up our spectrum for blocks of size bins.
func NewSpectrum(size int) *Spectrum {
	return &Spectrum{
		size: size,
		re:   make([]float64, size),
		im:   make([]float64, size),
		mag:  make([]float64, size),
	}
}

// Size returns the number of bins handled per call.
func (sp *Spectrum) Size() int {
	return sp.size
}

// Magnitude writes |bins[k]| into the internal buffer and returns it.
// The returned slice is overwritten by the next call.
func (sp *Spectrum) Magnitude(bins []complex128) []float64 {
	for k, c := range bins[:sp.size] {
		sp.re[k] = real(c)
		sp.im[k] = imag(c)
	}

	vecmath.Magnitude(sp.mag, sp.re, sp.im)

	return sp.mag
}

// LogMagnitude computes dst[k] = 20*log10(|bins[k]|).
func (sp *Spectrum) LogMagnitude(dst []float32, bins []complex128) {
	for k, m := range sp.Magnitude(bins) {
		dst[k] = float32(Decibels(m))
	}
}

// Decibels returns 20*log10(mag). mag is floored at the smallest positive
// float64.
func Decibels(mag float64) float64 {
	if mag < minMagnitude {
		mag = minMagnitude
	}
	return 20 * math.Log10(mag)
}
