//go:build !fftw

package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTW is false unless built with the fftw tag. gonum is used instead.
const FFTW = false

// Plan holds a gonum complex FFT plan.
type Plan struct {
	input  []complex128
	output []complex128
	fft    *fourier.CmplxFFT
}

// NewPlan returns a forward transform of len(in) points. in and out must be
// the same length.
func NewPlan(in, out []complex128) *Plan {
	return &Plan{
		input:  in,
		output: out,
		fft:    fourier.NewCmplxFFT(len(in)),
	}
}

// Execute executes the gonum plan.
func (p *Plan) Execute() {
	p.fft.Coefficients(p.output, p.input)
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return len(p.input)
}
