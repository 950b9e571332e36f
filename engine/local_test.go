package engine

import (
	"connect4/agent"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type fixedAgent struct {
	column int
}

func (a fixedAgent) FindMove(*game.Board, game.Player) (searcher.Result, metrics.SearchMetric) {
	return searcher.Result{Column: a.column}, metrics.SearchMetric{}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("random agents play to the end", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			e := NewLocalEngine(
				agent.NewRandomAgent(rand.New(rand.NewSource(seed))),
				agent.NewRandomAgent(rand.New(rand.NewSource(seed+100))),
				game.A,
			)

			outcome, gameMetric, moveMetrics := e.Run()

			require.NotEqual(t, game.Ongoing, outcome.Status)
			require.Equal(t, game.OutcomeOf(e.Session.Board()), outcome)
			require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
			require.Equal(t, e.Session.Board().Count(), gameMetric.TotalMoves)
			require.LessOrEqual(t, gameMetric.TotalMoves, MaxMoves)
			require.Equal(t, "A", gameMetric.StartingPlayer)
			require.Equal(t, "A", moveMetrics[0].Player)
			_, err := uuid.Parse(gameMetric.ID)
			require.NoError(t, err)
			if outcome.Status == game.Won {
				require.Equal(t, outcome.Winner.String(), gameMetric.Winner)
			} else {
				require.Empty(t, gameMetric.Winner)
			}
		}
	})

	t.Run("seeded search agents replay the same game", func(t *testing.T) {
		play := func() []game.Move {
			e := NewLocalEngine(
				agent.NewSearchAgent(searcher.NewMinimax(searcher.WithSeed(1)), 2),
				agent.NewSearchAgent(searcher.NewMinimax(searcher.WithSeed(2)), 3),
				game.B,
			)
			e.Run()
			return e.Session.History()
		}
		require.Equal(t, play(), play())
	})

	t.Run("search agent beats an agent stuck on one column", func(t *testing.T) {
		e := NewLocalEngine(
			fixedAgent{column: 0},
			agent.NewSearchAgent(searcher.NewMinimax(searcher.WithSeed(3)), 3),
			game.A,
		)

		outcome, _, _ := e.Run()

		require.Equal(t, game.Outcome{Status: game.Won, Winner: game.B}, outcome)
	})

	t.Run("invalid columns fall back to a valid one", func(t *testing.T) {
		e := NewLocalEngine(
			fixedAgent{column: -1},
			agent.NewRandomAgent(rand.New(rand.NewSource(1))),
			game.A,
		)

		outcome, _, moveMetrics := e.Run()

		require.NotEqual(t, game.Ongoing, outcome.Status)
		require.Equal(t, 0, moveMetrics[0].Column)
	})
}

func TestNewLocalEnginePanicsWithoutAgents(t *testing.T) {
	require.Panics(t, func() { NewLocalEngine(nil, fixedAgent{}, game.A) })
}
