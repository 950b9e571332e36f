package agent

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rand *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random valid column.
func NewRandomAgent(r *rand.Rand) Agent {
	return &randomAgent{rand: r}
}

func (a *randomAgent) FindMove(b *game.Board, player game.Player) (searcher.Result, metrics.SearchMetric) {
	columns := b.ValidColumns()
	if len(columns) == 0 {
		panic("cannot choose a move: board has no valid columns")
	}
	return searcher.Result{Column: columns[a.rand.Intn(len(columns))]}, metrics.SearchMetric{}
}
