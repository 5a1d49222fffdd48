package engine

import (
	"time"

	"github.com/lixenwraith/treescope/tree"
)

// searchState walks the cursor from root toward the target key, one
// comparison hop per tick.
type searchState struct {
	target int
	timer  time.Duration
}

// StartSearch begins an animated root-to-target walk for key. The
// cursor going nil is the implicit not-found signal.
func (c *Context) StartSearch(key int) {
	c.resetTransient()
	c.mode = ModeSearching
	c.cursor = c.Root
	c.search = searchState{target: key}
	c.narration.reset(searchSteps)
	c.log.Info().Int("key", key).Msg("search started")
}

func (c *Context) updateSearch(dt time.Duration) {
	if c.cursor == nil {
		// Walked off a nil child: not found
		c.mode = ModeIdle
		if c.Sound != nil {
			c.Sound.Error()
		}
		c.log.Info().Int("key", c.search.target).Msg("search exhausted")
		return
	}

	c.narration.advance(dt)

	s := &c.search
	s.timer += dt
	if s.timer < c.searchHop {
		return
	}
	s.timer = 0

	if s.target == c.cursor.Key {
		c.found = true
		c.cursor.Tag = tree.TagFound
		c.mode = ModeIdle
		if c.Sound != nil {
			c.Sound.Found()
		}
		c.log.Info().Int("key", s.target).Msg("search found")
		return
	}

	if c.Sound != nil {
		c.Sound.Visit()
	}
	if s.target < c.cursor.Key {
		c.cursor = c.cursor.Left
	} else {
		c.cursor = c.cursor.Right
	}
}
