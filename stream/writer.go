// Package stream moves blocks of float32 values over byte streams.
//
// A stream is nothing but consecutive little-endian IEEE-754 float32 values
// with no framing. The block size must be agreed out of band.
package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// Writer encodes blocks onto an io.Writer.
type Writer struct {
	w         io.Writer
	order     binary.ByteOrder
	blockSize int
	raw       []byte
	blocks    int
}

// NewWriter returns a Writer for blocks of blockSize values.
func NewWriter(w io.Writer, blockSize int) *Writer {
	return &Writer{
		w:         w,
		order:     binary.LittleEndian,
		blockSize: blockSize,
		raw:       make([]byte, blockSize*4),
	}
}

// WriteBlock writes one block in a single call to the underlying writer and
// flushes it if it is buffered.
func (wr *Writer) WriteBlock(block []float32) error {
	if len(block) != wr.blockSize {
		return errors.Errorf("block length %d, want %d", len(block), wr.blockSize)
	}

	buf := wr.raw
	for _, v := range block {
		wr.order.PutUint32(buf, math.Float32bits(v))
		buf = buf[4:]
	}

	if _, err := wr.w.Write(wr.raw); err != nil {
		return errors.Wrap(err, "failed to write block")
	}

	if f, ok := wr.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.Wrap(err, "failed to flush block")
		}
	}

	wr.blocks++

	return nil
}

// Blocks returns the number of blocks written successfully.
func (wr *Writer) Blocks() int {
	return wr.blocks
}

// BlockSize returns the number of values per block.
func (wr *Writer) BlockSize() int {
	return wr.blockSize
}
