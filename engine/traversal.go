package engine

import (
	"time"

	"github.com/lixenwraith/treescope/tree"
)

// frame is one pending visit of the traversal walk, standing in for the
// call frame the equivalent recursive algorithm would hold. phase is
// the resume point within that call: which child has been descended
// into and whether the node has been visited yet.
type frame struct {
	node  *tree.Node
	phase int
}

// Frame phases. Their meaning depends on the traversal order; the
// transition tables in updateTraversal give the exact mapping. Phase 3
// always pops.
const (
	phaseFirst = iota
	phaseSecond
	phaseThird
	phasePop
)

// traversalState is the resumable traversal machine: an explicit stack
// of frames whose depth always equals the recursion depth the recursive
// walk would have.
type traversalState struct {
	stack []frame
	timer time.Duration
}

func (ts *traversalState) push(n *tree.Node) {
	ts.stack = append(ts.stack, frame{node: n})
}

func (ts *traversalState) pop() {
	if len(ts.stack) == 0 {
		panic("traversal: pop on empty stack")
	}
	ts.stack = ts.stack[:len(ts.stack)-1]
}

// TraversalDepth returns the current frame stack depth.
func (c *Context) TraversalDepth() int { return len(c.traversal.stack) }

// StartTraversal begins an animated in/pre/post-order walk. An empty
// tree leaves the stack empty and the walk terminates on the first
// update.
func (c *Context) StartTraversal(mode Mode) {
	if mode != ModeTraverseIn && mode != ModeTraversePre && mode != ModeTraversePost {
		panic("traversal: not a traversal mode")
	}
	c.resetTransient()
	c.mode = mode
	if c.Root != nil {
		c.traversal.push(c.Root)
	}

	switch mode {
	case ModeTraverseIn:
		c.narration.reset(traverseInSteps)
	case ModeTraversePre:
		c.narration.reset(traversePreSteps)
	case ModeTraversePost:
		c.narration.reset(traversePostSteps)
	}
	c.log.Info().Str("order", mode.String()).Msg("traversal started")
}

// updateTraversal advances the walk by at most one hop. The edge
// highlight is cleared at the start of every hop, so a highlighted edge
// is visible for exactly one hop interval.
func (c *Context) updateTraversal(dt time.Duration) {
	ts := &c.traversal
	if len(ts.stack) == 0 {
		c.mode = ModeIdle
		c.cursor = nil
		c.edge = Edge{}
		c.log.Info().Msg("traversal finished")
		return
	}

	c.narration.advance(dt)

	ts.timer += dt
	if ts.timer < c.traversalHop {
		return
	}
	ts.timer = 0

	c.edge = Edge{}

	// Index the top explicitly: push may grow the backing array, so a
	// held pointer into the stack would go stale.
	top := len(ts.stack) - 1
	n := ts.stack[top].node
	phase := ts.stack[top].phase
	ts.stack[top].phase = phase + 1

	switch c.mode {
	case ModeTraverseIn:
		switch phase {
		case phaseFirst: // descend left
			c.cursor = n
			if n.Left != nil {
				c.edge = Edge{From: n, To: n.Left}
				ts.push(n.Left)
			}
		case phaseSecond: // visit
			c.visit(n)
		case phaseThird: // descend right
			if n.Right != nil {
				c.edge = Edge{From: n, To: n.Right}
				ts.push(n.Right)
			}
		case phasePop:
			ts.pop()
		}

	case ModeTraversePre:
		switch phase {
		case phaseFirst: // visit
			c.visit(n)
		case phaseSecond: // descend left
			if n.Left != nil {
				c.edge = Edge{From: n, To: n.Left}
				ts.push(n.Left)
			}
		case phaseThird: // descend right
			if n.Right != nil {
				c.edge = Edge{From: n, To: n.Right}
				ts.push(n.Right)
			}
		case phasePop:
			ts.pop()
		}

	case ModeTraversePost:
		switch phase {
		case phaseFirst: // descend left
			c.cursor = n
			if n.Left != nil {
				c.edge = Edge{From: n, To: n.Left}
				ts.push(n.Left)
			}
		case phaseSecond: // descend right
			c.cursor = n
			if n.Right != nil {
				c.edge = Edge{From: n, To: n.Right}
				ts.push(n.Right)
			}
		case phaseThird: // visit
			c.visit(n)
		case phasePop:
			ts.pop()
		}
	}
}

// visit marks a node as reached in traversal order.
func (c *Context) visit(n *tree.Node) {
	c.cursor = n
	n.Tag = tree.TagFound
	if c.Sound != nil {
		c.Sound.Visit()
	}
	c.log.Debug().Int("key", n.Key).Msg("visit")
}
