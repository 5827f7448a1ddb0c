package stream

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// TextWriter prints each block as one line of space separated numbers.
// It is meant for eyeballing a stream, not for feeding other programs.
type TextWriter struct {
	w         *bufio.Writer
	blockSize int
	precision int
	num       []byte
	blocks    int
}

// NewTextWriter returns a TextWriter printing precision decimal places.
func NewTextWriter(w io.Writer, blockSize, precision int) *TextWriter {
	return &TextWriter{
		w:         bufio.NewWriter(w),
		blockSize: blockSize,
		precision: precision,
		num:       make([]byte, 0, 32),
	}
}

// WriteBlock prints one block and flushes the line.
func (tw *TextWriter) WriteBlock(block []float32) error {
	if len(block) != tw.blockSize {
		return errors.Errorf("block length %d, want %d", len(block), tw.blockSize)
	}

	for i, v := range block {
		if i > 0 {
			tw.w.WriteByte(' ')
		}

		tw.num = strconv.AppendFloat(tw.num[:0], float64(v), 'f', tw.precision, 32)
		tw.w.Write(tw.num)
	}

	tw.w.WriteByte('\n')

	if err := tw.w.Flush(); err != nil {
		return errors.Wrap(err, "failed to write block")
	}

	tw.blocks++

	return nil
}

// Blocks returns the number of blocks written successfully.
func (tw *TextWriter) Blocks() int {
	return tw.blocks
}
