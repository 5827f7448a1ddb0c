package stream

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// BlockWriter sends blocks somewhere.
type BlockWriter interface {
	WriteBlock([]float32) error
	Blocks() int
}

// Format is an output encoding.
type Format int

// Output formats
const (
	// FormatRaw is little-endian float32 with no framing.
	FormatRaw Format = iota
	// FormatText is one line of decimal numbers per block.
	FormatText
)

// TextPrecision is the number of decimal places FormatText prints.
const TextPrecision = 3

var formatNames = map[Format]string{
	FormatRaw:  "raw",
	FormatText: "text",
}

// ParseFormat finds a format by name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}

	return 0, errors.Errorf("format not found: %q (raw or text)", name)
}

func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return "unknown"
}

// NewBlockWriter returns the writer for format f.
func NewBlockWriter(w io.Writer, blockSize int, f Format) (BlockWriter, error) {
	switch f {
	case FormatRaw:
		return NewWriter(w, blockSize), nil
	case FormatText:
		return NewTextWriter(w, blockSize, TextPrecision), nil
	}

	return nil, errors.Errorf("unknown format: %d", int(f))
}
