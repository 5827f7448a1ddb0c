package fft

import (
	"math"
	"math/cmplx"
	"testing"
)

// naive is the direct O(n^2) DFT.
func naive(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, x := range in {
			sum += x * cmplx.Rect(1, -2*math.Pi*float64(k*j)/float64(n))
		}
		out[k] = sum
	}
	return out
}

func TestExecuteMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 7, 16, 100} {
		in := make([]complex128, n)
		c := 3.1
		for i := range in {
			c += 0.3
			in[i] = complex(2*c-c*c, c)
		}

		out := make([]complex128, n)
		var plan *Plan
		InitPlan(&plan, in, out)
		plan.Execute()

		want := naive(in)
		for k := range want {
			if d := cmplx.Abs(out[k] - want[k]); d > 1e-6*(1+cmplx.Abs(want[k])) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, out[k], want[k])
			}
		}
	}
}

func TestExecuteImpulse(t *testing.T) {
	in := make([]complex128, 32)
	out := make([]complex128, 32)
	in[0] = 1

	plan := NewPlan(in, out)
	if plan.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", plan.Len())
	}
	plan.Execute()

	for k, v := range out {
		if cmplx.Abs(v-1) > 1e-12 {
			t.Fatalf("bin %d = %v, want 1", k, v)
		}
	}
}

func TestExecuteReusesBuffers(t *testing.T) {
	in := make([]complex128, 16)
	out := make([]complex128, 16)
	plan := NewPlan(in, out)

	in[0] = 2
	plan.Execute()
	if cmplx.Abs(out[5]-2) > 1e-12 {
		t.Fatalf("bin 5 = %v, want 2", out[5])
	}

	in[0] = 0
	in[1] = 1
	plan.Execute()
	want := cmplx.Rect(1, -2*math.Pi*5/16)
	if cmplx.Abs(out[5]-want) > 1e-12 {
		t.Fatalf("bin 5 = %v, want %v", out[5], want)
	}
}

func Benchmark(b *testing.B) {
	if FFTW {
		b.Log("Benchmarking FFTW.")
	} else {
		b.Log("Benchmarking gonum (built without the fftw tag).")
	}

	in := generateComplex()
	out := make([]complex128, len(in))
	plan := NewPlan(in, out)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		plan.Execute()
	}
}

const numSamples = 1024

func generateComplex() []complex128 {
	input := make([]complex128, numSamples)

	c := 3.1
	for i := range input {
		c += 0.3
		input[i] = complex(2*c-c*c, 0)
	}

	return input
}
