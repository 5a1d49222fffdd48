package constants

import "time"

// Narration pacing
const (
	// NarrationInterval is the delay between revealing consecutive
	// algorithm-step lines. Independent of the hop timer.
	NarrationInterval = 500 * time.Millisecond
)

// Hop pacing
const (
	// SearchHopInterval is the delay between search cursor moves
	SearchHopInterval = 600 * time.Millisecond

	// TraversalHopInterval is the delay between traversal phase
	// transitions
	TraversalHopInterval = 800 * time.Millisecond
)

// Delete phase pacing
const (
	// DeleteFlashInterval is the toggle cadence of the target node's
	// flash highlight
	DeleteFlashInterval = 120 * time.Millisecond

	// DeleteFlashToggles is how many toggles run before the drop phase
	DeleteFlashToggles = 7

	// DeleteDropRate is the falling speed of a condemned node in rows
	// per second
	DeleteDropRate = 12.0

	// DeleteDropMargin is how many rows past the bottom edge the node
	// falls before the fade phase starts
	DeleteDropMargin = 6.0

	// DeleteFadeRate is the opacity loss per second during the fade
	DeleteFadeRate = 3.0
)

// EaseRate is the exponential approach rate of node positions toward
// their layout targets, applied every frame as lerp(pos, target, rate*dt).
const EaseRate = 5.0
