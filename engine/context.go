// Package engine drives the animated BST algorithms: resumable,
// time-sliced state machines advanced once per rendered frame, with the
// renderer polling cursor, edge and node visual state afterwards.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/treescope/config"
	"github.com/lixenwraith/treescope/constants"
	"github.com/lixenwraith/treescope/layout"
	"github.com/lixenwraith/treescope/tree"
)

// Mode identifies the active animation. At most one is ever running;
// starting another discards the previous machine's transient state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeInserting
	ModeSearching
	ModeDeleting
	ModeTraverseIn
	ModeTraversePre
	ModeTraversePost
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeInserting:
		return "insert"
	case ModeSearching:
		return "search"
	case ModeDeleting:
		return "delete"
	case ModeTraverseIn:
		return "in-order"
	case ModeTraversePre:
		return "pre-order"
	case ModeTraversePost:
		return "post-order"
	default:
		return "unknown"
	}
}

// Edge is an ordered parent→child highlight pair. Zero value means no
// edge is highlighted.
type Edge struct {
	From, To *tree.Node
}

// SoundPlayer receives animation cues. Implementations must be safe to
// call from the update goroutine and must never block.
type SoundPlayer interface {
	Visit()
	Found()
	Error()
}

// Context owns the entire engine state: tree root, active mode, cursor,
// edge highlight, both pacing timers and the per-mode machines. All
// methods run on the single update goroutine; the renderer reads after
// Update returns.
type Context struct {
	Root *tree.Node

	// PendingKey is the key the next insert/search/delete applies to,
	// adjusted by the arrow keys
	PendingKey int

	// Sound is optional; nil disables cues
	Sound SoundPlayer

	mode   Mode
	cursor *tree.Node
	edge   Edge
	found  bool

	narration narration
	search    searchState
	deletion  deleteState
	traversal traversalState

	// Layout viewport
	originX, originY float64
	halfSpread       float64
	dropLimit        float64

	// Pacing, resolved from config at construction
	narrationInterval time.Duration
	searchHop         time.Duration
	traversalHop      time.Duration
	flashInterval     time.Duration
	flashToggles      int
	dropRate          float64
	fadeRate          float64
	easeRate          float64

	log zerolog.Logger
}

// NewContext creates an engine for a tree area of the given cell size.
func NewContext(cfg *config.Config, width, height int, log zerolog.Logger) *Context {
	c := &Context{
		PendingKey:        10,
		narrationInterval: secs(cfg.Pacing.NarrationSec),
		searchHop:         secs(cfg.Pacing.SearchHopSec),
		traversalHop:      secs(cfg.Pacing.TraversalHopSec),
		flashInterval:     secs(cfg.Pacing.FlashSec),
		flashToggles:      cfg.Pacing.FlashToggles,
		dropRate:          cfg.Pacing.DropRate,
		fadeRate:          cfg.Pacing.FadeRate,
		easeRate:          cfg.Pacing.EaseRate,
		log:               log,
	}
	c.narration.interval = c.narrationInterval
	c.SetViewport(width, height)

	for _, key := range cfg.InitialKeys {
		c.Root = tree.Insert(c.Root, key, c.originX, c.originY)
	}
	layout.Compute(c.Root, c.originX, c.originY, c.halfSpread)
	return c
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// SetViewport updates the tree area dimensions and recomputes layout.
// Called on startup and terminal resize.
func (c *Context) SetViewport(width, height int) {
	if width < 16 {
		width = 16
	}
	if height < 8 {
		height = 8
	}
	c.originX = float64(width) / 2
	c.originY = constants.TreeOriginY
	c.halfSpread = float64(width) / 4
	c.dropLimit = float64(height) + constants.DeleteDropMargin
	layout.Compute(c.Root, c.originX, c.originY, c.halfSpread)
}

// Mode returns the active animation mode.
func (c *Context) Mode() Mode { return c.mode }

// Cursor returns the currently pointed-at node, nil when none.
func (c *Context) Cursor() *tree.Node { return c.cursor }

// HighlightEdge returns the highlighted parent→child pair; zero Edge
// when none.
func (c *Context) HighlightEdge() Edge { return c.edge }

// Found reports whether the last search located its key.
func (c *Context) Found() bool { return c.found }

// AdjustPendingKey shifts the key the next operation applies to.
func (c *Context) AdjustPendingKey(delta int) {
	c.PendingKey += delta
}

// resetTransient discards any in-flight machine state so a new
// operation starts from a clean slate: stale cursors, edges, stacks and
// timers would otherwise leak highlights into the next animation.
func (c *Context) resetTransient() {
	// A delete cancelled mid-drop leaves its victim displaced and
	// translucent; restore it and let easing pull it home.
	if t := c.deletion.target; t != nil {
		t.Opacity = 1
		layout.Compute(c.Root, c.originX, c.originY, c.halfSpread)
	}

	c.cursor = nil
	c.edge = Edge{}
	c.found = false
	c.search = searchState{}
	c.deletion = deleteState{}
	c.traversal.stack = c.traversal.stack[:0]
	c.traversal.timer = 0
	tree.ResetTags(c.Root)
}

// Reset clears the whole tree and returns to idle.
func (c *Context) Reset() {
	c.resetTransient()
	c.Root = nil
	c.mode = ModeIdle
	c.narration.clear()
	c.log.Info().Msg("tree reset")
}
