package engine

import (
	"time"

	"github.com/lixenwraith/treescope/constants"
	"github.com/lixenwraith/treescope/layout"
	"github.com/lixenwraith/treescope/tree"
)

// Update advances the active animation by dt. Single per-frame entry
// point: called once before the renderer reads, never concurrently.
func (c *Context) Update(dt time.Duration) {
	layout.Ease(c.Root, c.easeRate, dt.Seconds())

	switch c.mode {
	case ModeInserting:
		c.updateInsert(dt)
	case ModeSearching:
		c.updateSearch(dt)
	case ModeDeleting:
		c.updateDelete(dt)
	case ModeTraverseIn, ModeTraversePre, ModeTraversePost:
		c.updateTraversal(dt)
	}
}

// StartInsert adds key to the tree. The mutation itself is instant;
// only the narration is timer-paced. New nodes spawn above the screen
// and ease down into their slot. Duplicates are a silent no-op.
func (c *Context) StartInsert(key int) {
	c.resetTransient()

	if tree.Find(c.Root, key) != nil {
		c.mode = ModeIdle
		c.log.Info().Int("key", key).Msg("duplicate insert ignored")
		return
	}

	c.Root = tree.Insert(c.Root, key, c.originX, constants.NodeSpawnY)
	layout.Compute(c.Root, c.originX, c.originY, c.halfSpread)
	c.mode = ModeInserting
	c.narration.reset(insertSteps)
	c.log.Info().Int("key", key).Msg("insert")
}

// updateInsert paces the insert narration and drops back to idle once
// the last step has been shown for a full interval.
func (c *Context) updateInsert(dt time.Duration) {
	c.narration.advance(dt)
	if c.narration.done() {
		c.mode = ModeIdle
	}
}
