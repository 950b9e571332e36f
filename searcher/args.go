package searcher

// WinScore is the magnitude returned for a won board. It dominates any heuristic sum.
const WinScore = 100_000_000

// Root alpha-beta window. It only needs to bound heuristic scores; a forced win found
// during search moves the bounds past it.
const (
	DefaultAlpha = -300
	DefaultBeta  = 300
)
