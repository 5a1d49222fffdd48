package constants

// Screen layout
const (
	// PanelWidth is the width of the algorithm-steps panel on the right
	PanelWidth = 34

	// StatusBarHeight is the number of rows reserved at the bottom for
	// the pending key and keybinding hints
	StatusBarHeight = 2

	// TreeOriginY is the row of the root node
	TreeOriginY = 3

	// RowHeight is the vertical distance between tree levels in cells
	RowHeight = 4

	// MinHalfSpread is the smallest horizontal half-distance between a
	// node and its children; deeper levels clamp here instead of
	// collapsing onto the same column
	MinHalfSpread = 2.0
)

// NodeSpawnY is where newly inserted nodes materialize before easing
// down into their laid-out slot. Purely cosmetic.
const NodeSpawnY = -5.0
