package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// Reader decodes blocks from an io.Reader.
type Reader struct {
	r         io.Reader
	reader    floatReader
	blockSize int
	raw       []byte
}

// NewReader returns a Reader for blocks of blockSize float32 values.
func NewReader(r io.Reader, blockSize int) *Reader {
	return &Reader{
		r: r,
		reader: floatReader{
			order: binary.LittleEndian,
		},
		blockSize: blockSize,
		raw:       make([]byte, blockSize*4),
	}
}

// ReadBlock reads exactly one block into dst, which must hold BlockSize
// values. It returns io.EOF if the stream ends on a block boundary and
// io.ErrUnexpectedEOF if it ends inside a block.
func (rd *Reader) ReadBlock(dst []float64) error {
	if len(dst) < rd.blockSize {
		return errors.Errorf("block length %d, want %d", len(dst), rd.blockSize)
	}

	if _, err := io.ReadFull(rd.r, rd.raw); err != nil {
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return err
		default:
			return errors.Wrap(err, "failed to read block")
		}
	}

	rd.reader.reset(rd.raw)
	for n := 0; n < rd.blockSize; n++ {
		dst[n] = rd.reader.next()
	}

	return nil
}

// BlockSize returns the number of values per block.
func (rd *Reader) BlockSize() int {
	return rd.blockSize
}

type floatReader struct {
	order binary.ByteOrder
	buf   []byte
}

func (f *floatReader) reset(b []byte) {
	f.buf = b
}

func (f *floatReader) next() float64 {
	b := f.buf[:4]
	f.buf = f.buf[4:]
	return float64(math.Float32frombits(f.order.Uint32(b)))
}
