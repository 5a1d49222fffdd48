package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/treescope/tree"
)

// Theme holds the visualizer palette. Colors are kept in colorful space
// so opacity and flash states blend instead of snapping.
type Theme struct {
	Background colorful.Color

	NodeNormal  colorful.Color
	NodeCursor  colorful.Color
	NodeFound   colorful.Color
	NodeFlashOn colorful.Color

	EdgeLeft   colorful.Color
	EdgeRight  colorful.Color
	EdgeActive colorful.Color

	PanelTitle colorful.Color
	PanelText  colorful.Color
	PanelEdge  colorful.Color
	StatusText colorful.Color
	StatusKey  colorful.Color
}

// DefaultTheme mirrors the classic palette: gray nodes, orange cursor,
// green found, red flash/active edge, yellow/blue child edges.
func DefaultTheme() Theme {
	return Theme{
		Background:  rgb(16, 16, 24),
		NodeNormal:  rgb(200, 200, 200),
		NodeCursor:  rgb(255, 161, 0),
		NodeFound:   rgb(0, 228, 48),
		NodeFlashOn: rgb(230, 41, 55),
		EdgeLeft:    rgb(253, 249, 0),
		EdgeRight:   rgb(0, 121, 241),
		EdgeActive:  rgb(230, 41, 55),
		PanelTitle:  rgb(240, 240, 240),
		PanelText:   rgb(102, 191, 255),
		PanelEdge:   rgb(80, 80, 100),
		StatusText:  rgb(180, 180, 180),
		StatusKey:   rgb(255, 161, 0),
	}
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// nodeColor resolves a node's base color from its tag and the cursor /
// found state, then blends toward the background by opacity so fading
// nodes sink into the backdrop.
func (t Theme) nodeColor(n *tree.Node, cursor *tree.Node, found bool) colorful.Color {
	c := t.NodeNormal
	switch n.Tag {
	case tree.TagFound:
		c = t.NodeFound
	case tree.TagFlashOn:
		c = t.NodeFlashOn
	case tree.TagFlashOff:
		c = t.NodeNormal
	}
	if n == cursor {
		c = t.NodeCursor
		if found {
			c = t.NodeFound
		}
	}
	if n.Opacity < 1 {
		c = t.Background.BlendRgb(c, clamp01(n.Opacity))
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
