// Package layout assigns target screen positions from tree shape and
// eases current positions toward them every frame.
package layout

import (
	"github.com/lixenwraith/treescope/constants"
	"github.com/lixenwraith/treescope/tree"
)

// Compute assigns target positions recursively: root at (x, y), left
// child a half-spread to the left and one row down, right child
// symmetric, spread halving per level. Pure function of tree shape;
// call after every structural mutation.
func Compute(root *tree.Node, x, y, halfSpread float64) {
	if root == nil {
		return
	}
	root.TargetX = x
	root.TargetY = y

	next := halfSpread / 2
	if next < constants.MinHalfSpread {
		next = constants.MinHalfSpread
	}
	Compute(root.Left, x-halfSpread, y+constants.RowHeight, next)
	Compute(root.Right, x+halfSpread, y+constants.RowHeight, next)
}

// Ease moves every node a rate*dt fraction of the remaining distance
// toward its target. Runs every frame whether or not an animation is
// active, so nodes retarget smoothly when layout changes mid-flight.
// dt is in seconds.
func Ease(root *tree.Node, rate, dt float64) {
	t := rate * dt
	if t > 1 {
		t = 1
	}
	tree.Walk(root, func(n *tree.Node) {
		n.X = lerp(n.X, n.TargetX, t)
		n.Y = lerp(n.Y, n.TargetY, t)
	})
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
