package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
)

type Agent interface {
	// FindMove returns a column to play for player on b and performance metrics (if collected)
	FindMove(b *game.Board, player game.Player) (searcher.Result, metrics.SearchMetric)
}

type searchAgent struct {
	search searcher.Searcher
	depth  int
}

// NewSearchAgent returns an agent that looks depth plies ahead.
func NewSearchAgent(search searcher.Searcher, depth int) Agent {
	return searchAgent{search: search, depth: depth}
}

func (a searchAgent) FindMove(b *game.Board, player game.Player) (searcher.Result, metrics.SearchMetric) {
	return a.search.ChooseMove(b, a.depth, player)
}
