package graphic

import (
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// drawText writes text on row y from column x, stopping before maxX.
// Returns the column after the last cell written.
func drawText(c Canvas, x, y, maxX int, text string, fg, bg termbox.Attribute) int {
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}

		if x+rw > maxX {
			break
		}

		c.SetCell(x, y, r, fg, bg)
		x += rw
	}

	return x
}
