// Package window provides window functions applied to a block before it is
// transformed.
//
// See https://wikipedia.org/wiki/Window_function
package window

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Function scales buf in place by a window.
type Function func(buf []float64)

// Rectangle leaves the buffer alone.
func Rectangle(buf []float64) {}

// CosSum scales the buffer by a two term cosine sum window with
// coefficient a0.
func CosSum(buf []float64, a0 float64) {
	size := len(buf)
	if size < 2 {
		return
	}

	a1 := 1.0 - a0
	coef := 2.0 * math.Pi / float64(size-1)

	for n := range buf {
		buf[n] *= a0 - a1*math.Cos(coef*float64(n))
	}
}

// Hamming scales the buffer by a Hamming window.
func Hamming(buf []float64) {
	CosSum(buf, 25.0/46.0)
}

// Hann scales the buffer by a Hann window.
func Hann(buf []float64) {
	CosSum(buf, 0.5)
}

// Bartlett scales the buffer by a triangular window.
func Bartlett(buf []float64) {
	size := len(buf)
	if size < 2 {
		return
	}

	half := float64(size-1) / 2.0
	for n := range buf {
		buf[n] *= 1.0 - math.Abs((float64(n)-half)/half)
	}
}

// Blackman scales the buffer by a Blackman window.
func Blackman(buf []float64) {
	size := len(buf)
	if size < 2 {
		return
	}

	coef := 2.0 * math.Pi / float64(size-1)
	for n := range buf {
		x := coef * float64(n)
		buf[n] *= 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x)
	}
}

// Named is a window function with the name users pick it by.
type Named struct {
	Name string
	Function
}

// Functions lists the windows that can be picked by name.
var Functions = []Named{
	{"rect", Rectangle},
	{"hann", Hann},
	{"hamming", Hamming},
	{"blackman", Blackman},
	{"bartlett", Bartlett},
}

// Names returns the window names in order.
func Names() []string {
	out := make([]string, len(Functions))
	for i, fn := range Functions {
		out[i] = fn.Name
	}
	return out
}

// Find returns the window called name.
func Find(name string) (Function, error) {
	for _, fn := range Functions {
		if strings.EqualFold(fn.Name, name) {
			return fn.Function, nil
		}
	}

	return nil, errors.Errorf("window not found: %q (%s)", name, strings.Join(Names(), ", "))
}

// Coefficients returns fn applied to a block of size ones.
func Coefficients(fn Function, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = 1
	}

	if fn != nil {
		fn(out)
	}

	return out
}
