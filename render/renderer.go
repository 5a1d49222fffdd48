// Package render reads the engine state after each update and draws the
// tree, edge highlights, narration panel and status bar onto a tcell
// screen. It never mutates engine state.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/treescope/engine"
	"github.com/lixenwraith/treescope/tree"
)

// Renderer draws one frame from a polled engine snapshot.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// New creates a renderer for the given screen with the default theme.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, theme: DefaultTheme()}
}

// Draw renders a full frame: edges below nodes, then panel and status.
// muted only affects the hint line.
func (r *Renderer) Draw(ctx *engine.Context, width, height int, muted bool) {
	r.screen.Clear()

	highlight := ctx.HighlightEdge()
	r.drawEdges(ctx.Root, highlight)
	r.drawNodes(ctx.Root, ctx.Cursor(), ctx.Found())

	r.drawPanel(ctx, width, height)
	r.drawStatus(ctx, width, height, muted)

	r.screen.Show()
}

// drawEdges walks the tree drawing parent→child connectors. The active
// edge gets the highlight color for exactly the hop it is set.
func (r *Renderer) drawEdges(n *tree.Node, highlight engine.Edge) {
	if n == nil {
		return
	}

	if n.Left != nil {
		color := r.theme.EdgeLeft
		if highlight.From == n && highlight.To == n.Left {
			color = r.theme.EdgeActive
		}
		r.drawEdge(n, n.Left, color)
	}
	if n.Right != nil {
		color := r.theme.EdgeRight
		if highlight.From == n && highlight.To == n.Right {
			color = r.theme.EdgeActive
		}
		r.drawEdge(n, n.Right, color)
	}

	r.drawEdges(n.Left, highlight)
	r.drawEdges(n.Right, highlight)
}

func (r *Renderer) drawEdge(from, to *tree.Node, color colorful.Color) {
	// Fade edges with their fading endpoint
	op := math.Min(from.Opacity, to.Opacity)
	if op < 1 {
		color = r.theme.Background.BlendRgb(color, clamp01(op))
	}
	style := tcell.StyleDefault.Foreground(toTcell(color))
	drawLine(r.screen, from.X, from.Y, to.X, to.Y, style)
}

// drawNodes draws node labels over the edges.
func (r *Renderer) drawNodes(n *tree.Node, cursor *tree.Node, found bool) {
	if n == nil {
		return
	}
	r.drawNodes(n.Left, cursor, found)
	r.drawNodes(n.Right, cursor, found)

	label := fmt.Sprintf("(%d)", n.Key)
	x := int(math.Round(n.X)) - len(label)/2
	y := int(math.Round(n.Y))

	color := r.theme.nodeColor(n, cursor, found)
	style := tcell.StyleDefault.Foreground(toTcell(color))
	if n == cursor {
		style = style.Bold(true)
	}
	r.drawText(x, y, label, style)
}
