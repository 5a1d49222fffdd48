package engine

import (
	"time"

	"github.com/lixenwraith/treescope/layout"
	"github.com/lixenwraith/treescope/tree"
)

// Delete phases. Locate runs instantly inside StartDelete; the rest
// each hold a continuous per-frame sub-animation and advance only when
// their exit condition is met (toggle count, drop threshold, zero
// opacity), not on the shared wall-clock cadence.
type deletePhase int

const (
	delFlash deletePhase = iota
	delDrop
	delFade
	delCommit
)

// deleteState sequences flash → drop → fade → commit on the located
// target node.
type deleteState struct {
	target     *tree.Node
	key        int
	phase      deletePhase
	flashTimer time.Duration
	flashCount int
}

// StartDelete locates key and begins the removal sequence. An absent
// key aborts straight back to idle with the tree untouched.
func (c *Context) StartDelete(key int) {
	c.resetTransient()

	target := tree.Find(c.Root, key)
	if target == nil {
		c.mode = ModeIdle
		if c.Sound != nil {
			c.Sound.Error()
		}
		c.log.Info().Int("key", key).Msg("delete target absent")
		return
	}

	c.mode = ModeDeleting
	c.deletion = deleteState{target: target, key: key}
	c.narration.reset(deleteSteps)
	c.log.Info().Int("key", key).Msg("delete started")
}

func (c *Context) updateDelete(dt time.Duration) {
	d := &c.deletion
	if d.target == nil {
		c.mode = ModeIdle
		return
	}

	c.narration.advance(dt)

	switch d.phase {
	case delFlash:
		d.flashTimer += dt
		if d.flashTimer < c.flashInterval {
			return
		}
		d.flashTimer = 0
		d.flashCount++
		if d.flashCount%2 == 0 {
			d.target.Tag = tree.TagFlashOn
		} else {
			d.target.Tag = tree.TagFlashOff
		}
		if d.flashCount >= c.flashToggles {
			d.phase = delDrop
			// Pin the target so easing stops fighting the fall
			d.target.TargetX = d.target.X
			d.target.TargetY = d.target.Y
		}

	case delDrop:
		d.target.Y += c.dropRate * dt.Seconds()
		d.target.TargetY = d.target.Y
		if d.target.Y > c.dropLimit {
			d.phase = delFade
		}

	case delFade:
		d.target.Opacity -= c.fadeRate * dt.Seconds()
		if d.target.Opacity <= 0 {
			d.target.Opacity = 0
			d.phase = delCommit
			// Commit in the same update that observed zero opacity so
			// the condemned node never gets another ease frame
			c.commitDelete()
		}

	case delCommit:
		c.commitDelete()
	}
}

// commitDelete performs the structural removal and returns to idle.
func (c *Context) commitDelete() {
	key := c.deletion.key
	// A two-child delete keeps the target node alive carrying its
	// successor's key, so the dropped, faded visual state must not
	// outlive the commit: restore it and let easing pull the survivor
	// into its slot.
	if t := c.deletion.target; t != nil {
		t.Opacity = 1
		t.Tag = tree.TagNormal
	}
	c.Root = tree.Delete(c.Root, key)
	layout.Compute(c.Root, c.originX, c.originY, c.halfSpread)
	c.deletion = deleteState{}
	c.cursor = nil
	c.mode = ModeIdle
	c.log.Info().Int("key", key).Msg("delete committed")
}
