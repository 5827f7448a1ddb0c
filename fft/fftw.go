//go:build fftw

package fft

// The only included binding is the one sigpipe needs: a forward,
// out-of-place, one dimensional complex plan.

// #cgo pkg-config: fftw3
// #include <fftw3.h>
import "C"

import (
	"runtime"
	"unsafe"
)

// FFTW is true if sigpipe is built with the fftw tag.
const FFTW = true

// Plan holds an FFTW C plan
type Plan struct {
	input  []complex128
	output []complex128
	cPlan  C.fftw_plan
}

// NewPlan returns a new FFTW Plan. in and out must be the same length.
//
// FFTW_ESTIMATE is used so that planning does not clobber the buffers.
func NewPlan(in, out []complex128) *Plan {
	var plan = &Plan{
		input:  in,
		output: out,
		cPlan: C.fftw_plan_dft_1d(
			C.int(len(in)),
			(*C.fftw_complex)(unsafe.Pointer(&in[0])),
			(*C.fftw_complex)(unsafe.Pointer(&out[0])),
			C.FFTW_FORWARD,
			C.FFTW_ESTIMATE,
		),
	}

	// Rely on the runtime to free memory.
	runtime.SetFinalizer(plan, (*Plan).destroy)

	return plan
}

// Execute runs the plan
func (p *Plan) Execute() {
	C.fftw_execute(p.cPlan)
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return len(p.input)
}

// destroy releases resources
func (p *Plan) destroy() {
	C.fftw_destroy_plan(p.cPlan)
}
