package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// Result is the column picked at the root and its minimax score.
type Result struct {
	Column int
	Score  int
}

type Searcher interface {
	ChooseMove(b *game.Board, depth int, player game.Player) (Result, metrics.SearchMetric)
}
