package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// MaxMoves bounds a game; a 6x7 board cannot take more drops than it has cells.
const MaxMoves = game.Rows * game.Cols

type Engine interface {
	// Run plays a game till a player wins or the board fills up
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
