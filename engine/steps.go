package engine

// Step lists for the narration panel. Static per operation; the reveal
// index advances on the narration timer.
var (
	insertSteps = []string{
		"Start at root",
		"Compare values",
		"Move left / right",
		"Insert at leaf",
		"Recalculate layout",
	}

	searchSteps = []string{
		"Start at root",
		"Compare target",
		"Move left or right",
		"Repeat until found or NULL",
	}

	deleteSteps = []string{
		"Find node",
		"Flash target node",
		"Drop node",
		"Fade node",
		"Delete & restructure",
	}

	traverseInSteps = []string{
		"In-order traversal:",
		"Go Left",
		"Visit Node",
		"Go Right",
	}

	traversePreSteps = []string{
		"Pre-order traversal:",
		"Visit Node",
		"Go Left",
		"Go Right",
	}

	traversePostSteps = []string{
		"Post-order traversal:",
		"Go Left",
		"Go Right",
		"Visit Node",
	}
)
