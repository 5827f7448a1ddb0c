// Package fft provides generic abstractions around fourier transformers.
package fft

// InitPlan creates a plan transforming input into output and stores it in
// pointer.
func InitPlan(pointer **Plan, input, output []complex128) {
	*pointer = NewPlan(input, output)
}
