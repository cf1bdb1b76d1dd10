package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H int
}

// Centered returns a rectangle covering percentX/percentY of the given area,
// centered on both axes independently.
func Centered(percentX, percentY, width, height int) Rect {
	w := width * percentX / 100
	h := height * percentY / 100
	return Rect{
		X: (width - w) / 2,
		Y: (height - h) / 2,
		W: w,
		H: h,
	}
}

// Overlay splices over into base at column x, row y, replacing whatever the
// base had in the covered cells. Both arguments are newline-joined rendered
// views; styled (ANSI) content is handled on either side of the cut.
// Overlay rows falling outside the base are dropped.
func Overlay(base, over string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	for i, ol := range strings.Split(over, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		bl := baseLines[row]
		left := ansi.Truncate(bl, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		right := ansi.TruncateLeft(bl, x+ansi.StringWidth(ol), "")
		baseLines[row] = left + ol + right
	}
	return strings.Join(baseLines, "\n")
}
