package synth

import (
	"math"
	"math/cmplx"
)

// Tone overwrites dst with exp(2*pi*i*freq*k) for k = 0..len(dst)-1.
// freq is normalised to cycles per sample.
func Tone(dst []complex128, freq float64) {
	step := 2 * math.Pi * freq
	for k := range dst {
		dst[k] = cmplx.Rect(1, step*float64(k))
	}
}

// AddTone adds exp(2*pi*i*freq*k) to each element of dst in place.
func AddTone(dst []complex128, freq float64) {
	step := 2 * math.Pi * freq
	for k := range dst {
		dst[k] += cmplx.Rect(1, step*float64(k))
	}
}
