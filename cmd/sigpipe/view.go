package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/noriah/sigpipe/graphic"
	"github.com/noriah/sigpipe/stream"

	"github.com/pkg/errors"
)

// viewBuffers is the number of blocks in flight between the reader and the
// drawing loop.
const viewBuffers = 8

// readBlocks reads from rd until it fails, moving buffers from free to full.
// full is closed when reading stops. The error is nil when the stream ends,
// even inside a block; a torn last block is dropped.
func readBlocks(ctx context.Context, rd *stream.Reader, free <-chan []float64, full chan<- []float64) error {
	defer close(full)

	for {
		var buf []float64

		select {
		case <-ctx.Done():
			return nil
		case buf = <-free:
		}

		if err := rd.ReadBlock(buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}

			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case full <- buf:
		}
	}
}

func view(cfg *config, ctx context.Context) error {
	display := graphic.NewDisplay()
	if err := display.Init(); err != nil {
		return err
	}

	defer display.Close()

	ctx = display.Start(ctx)

	waterfall := graphic.NewWaterfall(graphic.WaterfallConfig{
		BlockSize: cfg.size,
		History:   cfg.history,
		Palette:   cfg.pal,
	})

	free := make(chan []float64, viewBuffers)
	full := make(chan []float64, viewBuffers)

	for i := 0; i < viewBuffers; i++ {
		free <- make([]float64, cfg.size)
	}

	readErr := make(chan error, 1)
	go func() {
		readErr <- readBlocks(ctx, stream.NewReader(os.Stdin, cfg.size), free, full)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.frameRate))
	defer ticker.Stop()

	dirty := true

	for {
		select {
		case <-ctx.Done():
			return nil

		case buf, ok := <-full:
			if !ok {
				// keep the last picture up until the user quits.
				full = nil

				if err := <-readErr; err != nil {
					return err
				}

				continue
			}

			waterfall.Push(buf)
			free <- buf
			dirty = true

		case <-ticker.C:
			if !dirty {
				continue
			}

			if err := display.Draw(waterfall); err != nil {
				return errors.Wrap(err, "failed to draw")
			}

			dirty = false
		}
	}
}
