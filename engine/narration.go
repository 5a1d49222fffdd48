package engine

import "time"

// narration is the textual step list shown beside the animation. Its
// reveal timer is independent of the hop timer: both accumulate the
// same frame delta but fire on their own intervals. The index clamps at
// the last entry and never cycles mid-animation.
type narration struct {
	steps    []string
	index    int
	timer    time.Duration
	interval time.Duration
}

func (n *narration) reset(steps []string) {
	n.steps = steps
	n.index = 0
	n.timer = 0
}

func (n *narration) clear() {
	n.steps = nil
	n.index = 0
	n.timer = 0
}

// advance accumulates dt and reveals the next step when the interval
// elapses. Clamped: once the last entry shows, the index holds.
func (n *narration) advance(dt time.Duration) {
	if len(n.steps) == 0 {
		return
	}
	n.timer += dt
	if n.timer >= n.interval && n.index < len(n.steps)-1 {
		n.index++
		n.timer = 0
	}
}

// done reports whether every step has been revealed and held for one
// full interval.
func (n *narration) done() bool {
	return len(n.steps) == 0 || (n.index == len(n.steps)-1 && n.timer >= n.interval)
}

// NarrationLines returns the revealed portion of the current step list.
func (c *Context) NarrationLines() []string {
	n := &c.narration
	if len(n.steps) == 0 {
		return nil
	}
	return n.steps[:n.index+1]
}
