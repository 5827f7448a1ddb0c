package generator

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode selects what a Generator puts in each block.
type Mode int

// Generator modes
const (
	// ToneSpectrum is the log-magnitude spectrum of complex noise plus a tone.
	ToneSpectrum Mode = iota
	// NoiseSpectrum is the log-magnitude spectrum of real noise.
	NoiseSpectrum
	// RawNoise is real standard normal samples with no transform.
	RawNoise
)

// NamedMode pairs a mode with the name used to select it.
type NamedMode struct {
	Name        string
	Description string
	Mode
}

// Modes lists every mode in the order they are shown to users.
var Modes = []NamedMode{
	{
		Name:        "tone",
		Description: "log-magnitude spectrum of complex noise plus a tone",
		Mode:        ToneSpectrum,
	},
	{
		Name:        "psd",
		Description: "log-magnitude spectrum of real noise",
		Mode:        NoiseSpectrum,
	},
	{
		Name:        "noise",
		Description: "real standard normal samples",
		Mode:        RawNoise,
	},
}

// GetAllModeNames returns the names of all modes.
func GetAllModeNames() []string {
	out := make([]string, len(Modes))
	for i, m := range Modes {
		out[i] = m.Name
	}
	return out
}

// ParseMode finds a mode by name. Case is ignored.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(m.Name, name) {
			return m.Mode, nil
		}
	}

	return 0, errors.Errorf("mode not found: %q; check list-modes", name)
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, nm := range Modes {
		if nm.Mode == m {
			return true
		}
	}
	return false
}

func (m Mode) String() string {
	for _, nm := range Modes {
		if nm.Mode == m {
			return nm.Name
		}
	}
	return "unknown"
}

// Spectral reports whether m produces spectrum blocks.
func (m Mode) Spectral() bool {
	return m == ToneSpectrum || m == NoiseSpectrum
}
