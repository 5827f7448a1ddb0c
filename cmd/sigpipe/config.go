package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/noriah/sigpipe"
	"github.com/noriah/sigpipe/dsp/window"
	"github.com/noriah/sigpipe/generator"
	"github.com/noriah/sigpipe/graphic"
	"github.com/noriah/sigpipe/stream"

	"github.com/pkg/errors"
)

// DefaultFrameRate is how often the view redraws.
const DefaultFrameRate = 30

// MaxFrameRate is the highest redraw rate the view accepts.
const MaxFrameRate = 240

// config holds the command line as given. validate turns it into the values
// below the divider.
type config struct {
	// BlockSize is the positional block length
	blockSize string
	// ViewSize is the positional block length of the view subcommand
	viewSize string
	// Mode is the mode name from list-modes
	mode string
	// Seed for the random source
	seed uint64
	// ToneFreq is the tone frequency in cycles per sample
	toneFreq float64
	// Count is the number of blocks to write (0 never stops)
	count int
	// Rate is the number of blocks to write every second (0 as fast as the
	// reader takes them)
	rate int
	// Window is the window name for the spectral modes
	window string
	// Format is the output format name
	format string
	// Palette is the view palette name
	palette string
	// History is the number of rows the view keeps
	history int
	// FrameRate is the number of view redraws per second
	frameRate int

	size      int
	genMode   generator.Mode
	outFormat stream.Format
	winFunc   window.Function
	pal       graphic.Palette
}

// newZeroConfig returns the defaults. The seed comes from the clock so two
// runs differ unless one is given.
func newZeroConfig() config {
	return config{
		mode:      generator.ToneSpectrum.String(),
		seed:      uint64(time.Now().UnixNano()),
		toneFreq:  generator.DefaultToneFreq,
		window:    "rect",
		format:    stream.FormatRaw.String(),
		palette:   graphic.DefaultPalette,
		history:   graphic.DefaultHistory,
		frameRate: DefaultFrameRate,
	}
}

func parseBlockSize(arg string) (int, error) {
	if arg == "" {
		return generator.DefaultBlockSize, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Errorf("block length is not a number: %q", arg)
	}

	if n < 1 {
		return 0, errors.Errorf("block length must be > 0: %d", n)
	}

	return n, nil
}

func (cfg *config) validate() error {
	sizeArg := cfg.blockSize
	if cfg.viewSize != "" {
		sizeArg = cfg.viewSize
	}

	var err error

	if cfg.size, err = parseBlockSize(sizeArg); err != nil {
		return err
	}

	if cfg.genMode, err = generator.ParseMode(cfg.mode); err != nil {
		return err
	}

	if cfg.winFunc, err = window.Find(cfg.window); err != nil {
		return err
	}

	if cfg.outFormat, err = stream.ParseFormat(cfg.format); err != nil {
		return err
	}

	if cfg.pal, err = graphic.FindPalette(cfg.palette); err != nil {
		return err
	}

	switch {
	case math.IsNaN(cfg.toneFreq) || math.IsInf(cfg.toneFreq, 0):
		return errors.Errorf("tone frequency must be finite: %v", cfg.toneFreq)

	case !strings.EqualFold(cfg.window, "rect") && !cfg.genMode.Spectral():
		return errors.Errorf("window %q needs a spectral mode", cfg.window)

	case cfg.count < 0:
		return errors.Errorf("count must be >= 0: %d", cfg.count)

	case cfg.rate < 0:
		return errors.Errorf("rate must be >= 0: %d", cfg.rate)

	case cfg.rate > sigpipe.MaxProcessRate:
		return errors.Errorf("rate too high (%d max)", sigpipe.MaxProcessRate)

	case cfg.history < 1:
		return errors.Errorf("history must be > 0: %d", cfg.history)

	case cfg.frameRate < 1:
		return errors.Errorf("fps must be > 0: %d", cfg.frameRate)

	case cfg.frameRate > MaxFrameRate:
		return errors.Errorf("fps too high (%d max)", MaxFrameRate)
	}

	return nil
}
