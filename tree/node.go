package tree

// VisualTag selects how a node is drawn. Consumed only by rendering;
// tree logic never reads it.
type VisualTag uint8

const (
	TagNormal VisualTag = iota
	TagCursor
	TagFound
	TagFlashOn
	TagFlashOff
)

// Node is a BST node carrying animated visual state alongside the key.
// Left and Right are exclusively owned; a subtree dies with its parent.
type Node struct {
	Key         int
	Left, Right *Node

	// Current position in cell coordinates, eased toward the target
	// every frame
	X, Y float64

	// Target position assigned by layout
	TargetX, TargetY float64

	// Opacity is 1 normally and driven to 0 by the delete fade
	Opacity float64

	Tag VisualTag
}

// NewNode creates a node at the given spawn position with its target
// set to the same point; layout retargets it on the next compute.
func NewNode(key int, spawnX, spawnY float64) *Node {
	return &Node{
		Key:     key,
		X:       spawnX,
		Y:       spawnY,
		TargetX: spawnX,
		TargetY: spawnY,
		Opacity: 1,
	}
}
