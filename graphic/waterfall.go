package graphic

import (
	"fmt"
	"math"

	"github.com/noriah/sigpipe/dsp"
	"github.com/noriah/sigpipe/util"

	"github.com/nsf/termbox-go"
)

const (
	// DefaultHistory is the number of rows kept for redraws.
	DefaultHistory = 256

	// ScalingWindow is the number of blocks the level tracker looks back.
	ScalingWindow = 64

	// ScalingDumpPercent is how much of the level history is erased when
	// the levels jump.
	ScalingDumpPercent = 0.75

	// ScalingResetDeviation is how many standard deviations a block may
	// sit from the tracked level before the history is dumped.
	ScalingResetDeviation = 4
)

// Canvas is the surface a waterfall draws on.
type Canvas interface {
	Size() (int, int)
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
}

// WaterfallConfig holds the parameters of a Waterfall.
type WaterfallConfig struct {
	BlockSize int     // values per block
	History   int     // rows kept
	Palette   Palette // level colouring
}

// Waterfall keeps the most recent blocks and draws them newest first, one
// row per block.
type Waterfall struct {
	cfg WaterfallConfig

	rows  [][]float64
	head  int
	count int

	floor *util.MovingWindow
	ceil  *util.MovingWindow

	cols []float64

	blocks  int
	peakIdx int
	peakVal float64
	median  float64
}

// NewWaterfall returns an empty waterfall.
func NewWaterfall(cfg WaterfallConfig) *Waterfall {
	if cfg.History < 1 {
		cfg.History = DefaultHistory
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette, _ = FindPalette(DefaultPalette)
	}

	rows := make([][]float64, cfg.History)
	for i := range rows {
		rows[i] = make([]float64, cfg.BlockSize)
	}

	return &Waterfall{
		cfg:   cfg,
		rows:  rows,
		floor: util.NewMovingWindow(ScalingWindow),
		ceil:  util.NewMovingWindow(ScalingWindow),
	}
}

// Push adds a block as the newest row.
func (w *Waterfall) Push(block []float64) {
	row := w.rows[w.head]
	copy(row, block)

	w.head = (w.head + 1) % len(w.rows)
	if w.count < len(w.rows) {
		w.count++
	}

	w.blocks++

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if !math.IsInf(lo, 0) {
		w.track(w.floor, lo)
		w.track(w.ceil, hi)
	}

	w.peakIdx, w.peakVal = dsp.Peak(row)
	w.median = dsp.Median(row)
}

// track updates mw with v, dumping most of the history first if v sits far
// outside what the window has seen.
func (w *Waterfall) track(mw *util.MovingWindow, v float64) {
	if mean, sd := mw.Stats(); mw.Len() > 1 && sd > 0 {
		if math.Abs(v-mean) > ScalingResetDeviation*sd {
			mw.Drop(int(float64(mw.Len()) * ScalingDumpPercent))
		}
	}

	mw.Update(v)
}

// Levels returns the values drawn with the lowest and highest colours.
func (w *Waterfall) Levels() (float64, float64) {
	lo := w.floor.Mean() - w.floor.StdDev()
	hi := w.ceil.Mean() + w.ceil.StdDev()

	if hi-lo < 1e-6 {
		hi = lo + 1
	}

	return lo, hi
}

// Blocks returns the number of blocks pushed so far.
func (w *Waterfall) Blocks() int {
	return w.blocks
}

// Row returns the row age blocks old, 0 being the newest.
func (w *Waterfall) Row(age int) []float64 {
	if age < 0 || age >= w.count {
		return nil
	}

	idx := (w.head - 1 - age + len(w.rows)) % len(w.rows)
	return w.rows[idx]
}

// Status returns the text shown under the waterfall.
func (w *Waterfall) Status() string {
	if w.blocks == 0 {
		return "waiting for data  q quit"
	}

	lo, hi := w.Levels()

	return fmt.Sprintf("blocks %d  peak bin %d %.1f  median %.1f  range [%.1f, %.1f]  q quit",
		w.blocks, w.peakIdx, w.peakVal, w.median, lo, hi)
}

// Draw renders the rows that fit on c, with the status line on the bottom
// row.
func (w *Waterfall) Draw(c Canvas) {
	width, height := c.Size()
	if width <= 0 || height <= 0 {
		return
	}

	if len(w.cols) != width {
		w.cols = make([]float64, width)
	}

	lo, hi := w.Levels()

	for y := 0; y < height-1; y++ {
		row := w.Row(y)
		if row == nil {
			break
		}

		Decimate(w.cols, row)

		for x, v := range w.cols {
			c.SetCell(x, y, ' ', termbox.ColorDefault, w.cfg.Palette.Colour(Level(v, lo, hi)))
		}
	}

	drawText(c, 0, height-1, width, w.Status(), termbox.ColorDefault, termbox.ColorDefault)
}

// Decimate fills dst from src. Each element of dst takes the largest value
// of the run of src that maps onto it. When dst is wider than src, values
// are repeated.
func Decimate(dst, src []float64) {
	n, cols := len(src), len(dst)
	if n == 0 || cols == 0 {
		return
	}

	for c := range dst {
		lo := c * n / cols
		hi := (c + 1) * n / cols
		if hi <= lo {
			hi = lo + 1
		}

		m := src[lo]
		for _, v := range src[lo+1 : hi] {
			if v > m {
				m = v
			}
		}

		dst[c] = m
	}
}
