package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type LocalEngine struct {
	Session *Session
	Agents  map[game.Player]agent.Agent
}

// NewLocalEngine pits agentA (player A) against agentB (player B), first moving first.
func NewLocalEngine(agentA, agentB agent.Agent, first game.Player) *LocalEngine {
	if agentA == nil || agentB == nil {
		panic("need an agent for each player")
	}
	return &LocalEngine{
		Session: NewSession(first),
		Agents: map[game.Player]agent.Agent{
			game.A: agentA,
			game.B: agentB,
		},
	}
}

// Run executes the game loop until the game is won or drawn.
func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:             uuid.NewString(),
		StartingPlayer: e.Session.First().String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Str("game", gameMetric.ID).Msgf("player %s is starting", e.Session.First())

	for step := 1; e.Session.Outcome().Status == game.Ongoing && step <= MaxMoves; step++ {
		player := e.Session.Turn()
		board := e.Session.Board()

		result, searchMetric := e.Agents[player].FindMove(board, player)
		if !slices.Contains(board.ValidColumns(), result.Column) {
			log.Warn().Int("column", result.Column).Msgf("player %s chose an invalid column, falling back", player)
			result.Column = board.ValidColumns()[0]
		}

		move, err := e.Session.Play(result.Column)
		if err != nil {
			panic(err) // Column was validated against the same board
		}
		log.Debug().Int("step", step).Int("row", move.Row).Int("score", result.Score).Msgf("player %s played column %d", player, move.Column)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			Column:       move.Column,
			Score:        result.Score,
			SearchMetric: searchMetric,
		})
	}

	outcome := e.Session.Outcome()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if outcome.Status == game.Won {
		gameMetric.Winner = outcome.Winner.String()
	}

	log.Info().Str("game", gameMetric.ID).Int("moves", gameMetric.TotalMoves).Msgf("game over: %s %s", outcome.Status, gameMetric.Winner)

	return outcome, gameMetric, moveMetrics
}

var _ Engine = (*LocalEngine)(nil)
