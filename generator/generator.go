// Package generator produces fixed-length blocks of synthetic signal data.
package generator

import (
	"math"

	"github.com/noriah/sigpipe/dsp"
	"github.com/noriah/sigpipe/dsp/window"
	"github.com/noriah/sigpipe/fft"
	"github.com/noriah/sigpipe/synth"
	"github.com/pkg/errors"
)

const (
	// DefaultBlockSize is the block length used when none is given.
	DefaultBlockSize = 1024
	// DefaultToneFreq is the tone frequency in cycles per sample.
	DefaultToneFreq = 0.01
)

// Config holds the parameters of a Generator.
type Config struct {
	BlockSize int     // values per block
	Mode      Mode    // what each block contains
	ToneFreq  float64 // normalised tone frequency for ToneSpectrum

	// Window is applied to the signal before it is transformed. Nil leaves
	// the signal as drawn.
	Window window.Function
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		BlockSize: DefaultBlockSize,
		Mode:      ToneSpectrum,
		ToneFreq:  DefaultToneFreq,
	}
}

// Validate checks cfg for values a Generator cannot work with.
func (cfg Config) Validate() error {
	switch {
	case cfg.BlockSize < 1:
		return errors.Errorf("block size must be > 0: %d", cfg.BlockSize)

	case !cfg.Mode.Valid():
		return errors.Errorf("unknown mode: %d", int(cfg.Mode))

	case math.IsNaN(cfg.ToneFreq) || math.IsInf(cfg.ToneFreq, 0):
		return errors.Errorf("tone frequency must be finite: %v", cfg.ToneFreq)
	}

	return nil
}

// Generator makes one block per call to Next. It keeps no state between
// blocks other than its random source and scratch buffers, and is not safe
// for concurrent use.
type Generator struct {
	cfg Config
	src *synth.Source

	noise  []float64
	signal []complex128
	bins   []complex128

	taper []float64
	plan  *fft.Plan
	spec  *dsp.Spectrum
}

// New returns a Generator drawing its randomness from src.
func New(cfg Config, src *synth.Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator config")
	}

	if src == nil {
		return nil, errors.New("nil random source")
	}

	g := &Generator{
		cfg: cfg,
		src: src,
	}

	switch cfg.Mode {
	case RawNoise:
		g.noise = make([]float64, cfg.BlockSize)

	case NoiseSpectrum:
		g.noise = make([]float64, cfg.BlockSize)
		fallthrough

	case ToneSpectrum:
		g.signal = make([]complex128, cfg.BlockSize)
		g.bins = make([]complex128, cfg.BlockSize)
		g.spec = dsp.NewSpectrum(cfg.BlockSize)

		if cfg.Window != nil {
			g.taper = window.Coefficients(cfg.Window, cfg.BlockSize)
		}

		fft.InitPlan(&g.plan, g.signal, g.bins)
	}

	return g, nil
}

// BlockSize returns the number of values per block.
func (g *Generator) BlockSize() int {
	return g.cfg.BlockSize
}

// Mode returns the generator mode.
func (g *Generator) Mode() Mode {
	return g.cfg.Mode
}

// Next fills dst with the next block. len(dst) must equal BlockSize.
func (g *Generator) Next(dst []float32) error {
	if len(dst) != g.cfg.BlockSize {
		return errors.Errorf("block length %d, want %d", len(dst), g.cfg.BlockSize)
	}

	switch g.cfg.Mode {
	case ToneSpectrum:
		g.src.Complex(g.signal)
		synth.AddTone(g.signal, g.cfg.ToneFreq)
		g.transform(dst)

	case NoiseSpectrum:
		g.src.Real(g.noise)
		for i, v := range g.noise {
			g.signal[i] = complex(v, 0)
		}
		g.transform(dst)

	case RawNoise:
		g.src.Real(g.noise)
		for i, v := range g.noise {
			dst[i] = float32(v)
		}
	}

	return nil
}

// Block allocates and returns the next block.
func (g *Generator) Block() ([]float32, error) {
	dst := make([]float32, g.cfg.BlockSize)
	if err := g.Next(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (g *Generator) transform(dst []float32) {
	for i, w := range g.taper {
		g.signal[i] *= complex(w, 0)
	}

	g.plan.Execute()
	g.spec.LogMagnitude(dst, g.bins)
}
