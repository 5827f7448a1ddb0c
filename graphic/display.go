// Package graphic draws streams of blocks on the terminal.
package graphic

import (
	"context"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// screen is the termbox backed Canvas.
type screen struct{}

func (screen) Size() (int, int) {
	return termbox.Size()
}

func (screen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

// Display handles drawing on the terminal.
type Display struct {
	restore func() error
}

// NewDisplay returns a display. Init must be called before anything else.
func NewDisplay() *Display {
	return &Display{}
}

// Init sets up the terminal.
func (d *Display) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return errors.Wrap(err, "failed to normalize terminal")
	}

	if err := termbox.Init(); err != nil {
		restore()
		return errors.Wrap(err, "failed to init termbox")
	}

	d.restore = restore

	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()

	return nil
}

// Close will clean up the terminal.
func (d *Display) Close() error {
	termbox.Close()

	if d.restore != nil {
		return d.restore()
	}

	return nil
}

// Start polls for terminal events. The returned context is cancelled when
// the user asks to quit.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go eventPoller(dispCtx, dispCancel)
	return dispCtx
}

// eventPoller will take events and do things with them
func eventPoller(ctx context.Context, fn context.CancelFunc) {
	defer fn()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			switch ev.Key {
			case termbox.KeyCtrlC, termbox.KeyEsc:
				return
			}

			switch ev.Ch {
			case 'q', 'Q':
				return
			}

		case termbox.EventInterrupt, termbox.EventError:
			return
		}
	}
}

// Draw clears the terminal and draws the waterfall.
func (d *Display) Draw(w *Waterfall) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	w.Draw(screen{})

	return termbox.Flush()
}
