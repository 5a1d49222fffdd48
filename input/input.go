// Package input maps terminal key events to engine commands.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/treescope/engine"
)

// Muter is the slice of the audio engine input needs.
type Muter interface {
	ToggleMute() bool
}

// Handler routes key events to the engine. Mouse and resize events are
// handled by the main loop.
type Handler struct {
	Ctx   *engine.Context
	Sound Muter // optional
}

// New creates a handler for ctx.
func New(ctx *engine.Context, sound Muter) *Handler {
	return &Handler{Ctx: ctx, Sound: sound}
}

// HandleKey processes one key event. Returns false when the
// application should exit.
func (h *Handler) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.Ctx.AdjustPendingKey(1)
		return true
	case tcell.KeyDown:
		h.Ctx.AdjustPendingKey(-1)
		return true
	case tcell.KeyRune:
		return h.handleRune(ev.Rune())
	}
	return true
}

func (h *Handler) handleRune(r rune) bool {
	ctx := h.Ctx
	switch r {
	case 'q':
		return false
	case 'i':
		ctx.StartInsert(ctx.PendingKey)
	case 's':
		ctx.StartSearch(ctx.PendingKey)
	case 'd':
		ctx.StartDelete(ctx.PendingKey)
	case 'r':
		ctx.Reset()
	case '1':
		ctx.StartTraversal(engine.ModeTraverseIn)
	case '2':
		ctx.StartTraversal(engine.ModeTraversePre)
	case '3':
		ctx.StartTraversal(engine.ModeTraversePost)
	case '+', '=':
		ctx.AdjustPendingKey(1)
	case '-', '_':
		ctx.AdjustPendingKey(-1)
	case 'm':
		if h.Sound != nil {
			h.Sound.ToggleMute()
		}
	}
	return true
}
