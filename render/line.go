package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// drawLine steps a cell line from (x0,y0) to (x1,y1) with a slope-picked
// rune. Endpoints are left to the node drawing pass; out-of-range cells
// are dropped by tcell.
func drawLine(s tcell.Screen, x0, y0, x1, y1 float64, style tcell.Style) {
	dx := x1 - x0
	dy := y1 - y0

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		return
	}

	ch := lineRune(dx, dy)
	sx := dx / steps
	sy := dy / steps

	x, y := x0, y0
	for i := 1; i < int(steps); i++ {
		x += sx
		y += sy
		s.SetContent(int(math.Round(x)), int(math.Round(y)), ch, nil, style)
	}
}

// lineRune picks a connector glyph from the dominant direction.
func lineRune(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case adx < ady/2:
		return '│'
	case ady < adx/2:
		return '─'
	case (dx < 0) != (dy < 0):
		return '/'
	default:
		return '\\'
	}
}
