package sigpipe

import (
	"io"

	"github.com/noriah/sigpipe/dsp/window"
	"github.com/noriah/sigpipe/generator"
	"github.com/noriah/sigpipe/stream"
	"github.com/pkg/errors"
)

// MaxProcessRate is the highest block rate that can be requested.
const MaxProcessRate = 1000000

type Config struct {
	// The number of values per block
	BlockSize int
	// What each block contains
	Mode generator.Mode
	// Normalised tone frequency, in cycles per sample
	ToneFreq float64
	// Window applied before the transform in the spectral modes. Nil
	// leaves the signal as drawn
	Window window.Function
	// Seed for the random source
	Seed uint64
	// Stop after this many blocks. Zero streams until the output closes
	Blocks int
	// The number of blocks to write per second. Zero writes as fast as
	// the output accepts them
	ProcessRate int
	// How blocks are encoded
	Format stream.Format
	// Where to send the blocks
	Output io.Writer
}

func NewZeroConfig() Config {
	return Config{
		BlockSize: generator.DefaultBlockSize,
		Mode:      generator.ToneSpectrum,
		ToneFreq:  generator.DefaultToneFreq,
		Format:    stream.FormatRaw,
	}
}

func (cfg *Config) generatorConfig() generator.Config {
	return generator.Config{
		BlockSize: cfg.BlockSize,
		Mode:      cfg.Mode,
		ToneFreq:  cfg.ToneFreq,
		Window:    cfg.Window,
	}
}

func (cfg *Config) Validate() error {
	if err := cfg.generatorConfig().Validate(); err != nil {
		return err
	}

	switch {
	case cfg.Output == nil:
		return errors.New("no output")

	case cfg.Format != stream.FormatRaw && cfg.Format != stream.FormatText:
		return errors.Errorf("unknown output format: %d", int(cfg.Format))

	case cfg.Blocks < 0:
		return errors.Errorf("block count must be >= 0: %d", cfg.Blocks)

	case cfg.ProcessRate < 0:
		return errors.Errorf("process rate must be >= 0: %d", cfg.ProcessRate)

	case cfg.ProcessRate > MaxProcessRate:
		return errors.Errorf("process rate too high (%d max)", MaxProcessRate)
	}

	return nil
}
