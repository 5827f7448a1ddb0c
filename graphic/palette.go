package graphic

import (
	"math"
	"strings"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// Palette maps a level in [0, 1] to a 256-colour terminal attribute.
// Low levels come first.
type Palette []termbox.Attribute

// xterm builds a palette from xterm 256-colour indices. Termbox numbers
// colours from 1 in Output256 mode.
func xterm(indices ...int) Palette {
	p := make(Palette, len(indices))
	for i, idx := range indices {
		p[i] = termbox.Attribute(idx + 1)
	}
	return p
}

func grayRamp() Palette {
	indices := []int{16}
	for idx := 232; idx <= 255; idx++ {
		indices = append(indices, idx)
	}
	indices = append(indices, 231)
	return xterm(indices...)
}

// Palettes lists the named palettes.
var Palettes = []struct {
	Name string
	Palette
}{
	{"heat", xterm(
		16, 17, 18, 54, 55, 91, 127, 163, 199,
		198, 197, 196, 202, 208, 214, 220, 226,
		227, 228, 229, 230, 231,
	)},
	{"gray", grayRamp()},
}

// DefaultPalette is the palette used when none is named.
const DefaultPalette = "heat"

// FindPalette returns the palette called name. "grey" is accepted for
// "gray".
func FindPalette(name string) (Palette, error) {
	name = strings.ToLower(name)
	if name == "grey" {
		name = "gray"
	}

	for _, p := range Palettes {
		if p.Name == name {
			return p.Palette, nil
		}
	}

	return nil, errors.Errorf("palette not found: %q", name)
}

// Colour returns the attribute for level, clamped to [0, 1].
func (p Palette) Colour(level float64) termbox.Attribute {
	if len(p) == 0 {
		return termbox.ColorDefault
	}

	if math.IsNaN(level) || level <= 0 {
		return p[0]
	}

	idx := int(level * float64(len(p)))
	if idx >= len(p) {
		idx = len(p) - 1
	}

	return p[idx]
}

// Level normalises v into [0, 1] relative to lo and hi.
func Level(v, lo, hi float64) float64 {
	span := hi - lo
	if span < 1e-6 {
		span = 1e-6
	}

	l := (v - lo) / span

	switch {
	case l < 0, math.IsNaN(l):
		return 0
	case l > 1:
		return 1
	}

	return l
}
