package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treescope/constants"
	"github.com/lixenwraith/treescope/engine"
)

// drawPanel renders the algorithm-steps panel along the right edge:
// border column, title, then the narration lines revealed so far.
func (r *Renderer) drawPanel(ctx *engine.Context, width, height int) {
	x0 := width - constants.PanelWidth
	if x0 < 0 {
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(toTcell(r.theme.PanelEdge))
	for y := 0; y < height; y++ {
		r.screen.SetContent(x0, y, '│', nil, borderStyle)
	}

	titleStyle := tcell.StyleDefault.Foreground(toTcell(r.theme.PanelTitle)).Bold(true)
	r.drawText(x0+2, 1, "Algorithm Steps", titleStyle)

	textStyle := tcell.StyleDefault.Foreground(toTcell(r.theme.PanelText))
	y := 3
	for _, line := range ctx.NarrationLines() {
		if y >= height-constants.StatusBarHeight {
			break
		}
		r.drawText(x0+2, y, "- "+line, textStyle)
		y++
	}
}

// drawStatus renders the pending key, mode and keybinding hints in the
// bottom rows.
func (r *Renderer) drawStatus(ctx *engine.Context, width, height int, muted bool) {
	textStyle := tcell.StyleDefault.Foreground(toTcell(r.theme.StatusText))
	keyStyle := tcell.StyleDefault.Foreground(toTcell(r.theme.StatusKey)).Bold(true)

	status := fmt.Sprintf("Key: %d", ctx.PendingKey)
	r.drawText(1, height-2, status, keyStyle)

	mode := ctx.Mode()
	if mode != engine.ModeIdle {
		r.drawText(len(status)+3, height-2, "["+mode.String()+"]", textStyle)
	} else if ctx.Found() {
		r.drawText(len(status)+3, height-2, "[found]", tcell.StyleDefault.Foreground(toTcell(r.theme.NodeFound)))
	}

	hints := "[i]nsert [s]earch [d]elete [r]eset  [1]in [2]pre [3]post  [↑/↓]key"
	if muted {
		hints += "  [m]uted"
	} else {
		hints += "  [m]ute"
	}
	hints += "  [q]uit"
	r.drawText(1, height-1, hints, textStyle)
}

// drawText writes a string left-to-right; tcell drops cells past the
// screen edge.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
