package engine

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionPlay(t *testing.T) {
	t.Run("alternates turns", func(t *testing.T) {
		s := NewSession(game.B)
		require.Equal(t, game.B, s.Turn())

		move, err := s.Play(3)
		require.NoError(t, err)
		require.Equal(t, game.Move{Player: game.B, Column: 3, Row: game.Rows - 1}, move)
		require.Equal(t, game.A, s.Turn())

		move, err = s.Play(3)
		require.NoError(t, err)
		require.Equal(t, game.Rows-2, move.Row)
		require.Equal(t, game.B, s.Turn())
		require.Len(t, s.History(), 2)
	})

	t.Run("detects a win and rejects further moves", func(t *testing.T) {
		s := NewSession(game.A)
		for _, column := range []int{0, 6, 1, 6, 2, 6} {
			_, err := s.Play(column)
			require.NoError(t, err)
			require.Equal(t, game.Ongoing, s.Outcome().Status)
		}

		_, err := s.Play(3)
		require.NoError(t, err)
		require.Equal(t, game.Outcome{Status: game.Won, Winner: game.A}, s.Outcome())
		require.Equal(t, game.A, s.Turn(), "Turn should stay with the winner")

		_, err = s.Play(4)
		require.ErrorIs(t, err, ErrGameOver)
		require.Len(t, s.History(), 7)
	})

	t.Run("full column leaves the session unchanged", func(t *testing.T) {
		s := NewSession(game.A)
		for i := 0; i < game.Rows; i++ {
			_, err := s.Play(5)
			require.NoError(t, err)
		}
		before := s.Board()
		turn := s.Turn()

		_, err := s.Play(5)

		var full *game.FullColumnError
		require.ErrorAs(t, err, &full)
		require.Equal(t, before, s.Board())
		require.Equal(t, turn, s.Turn())
		require.Len(t, s.History(), game.Rows)
	})

	t.Run("invalid column is rejected", func(t *testing.T) {
		s := NewSession(game.A)
		_, err := s.Play(game.Cols)

		var invalid *game.InvalidColumnError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, game.A, s.Turn())
	})

	t.Run("filling the board is a draw", func(t *testing.T) {
		// Columns are filled in an order that reproduces the draw pattern
		// AABBAAB / BBAABBA stacked bottom up, alternating A and B.
		s := NewSession(game.B)
		order := []int{0, 2, 1, 3, 4, 6, 5, 0, 2, 1, 3, 4, 6, 5, 0, 2, 1, 3, 4, 6, 5, 0, 2, 1, 3, 4, 6, 5, 0, 2, 1, 3, 4, 6, 5, 0, 2, 1, 3, 4, 6, 5}
		for i, column := range order {
			_, err := s.Play(column)
			require.NoError(t, err, "move %d", i)
			if i < len(order)-1 {
				require.Equal(t, game.Ongoing, s.Outcome().Status, "move %d\n%s", i, s.Board())
			}
		}
		require.Equal(t, game.Outcome{Status: game.Draw}, s.Outcome())
		_, err := s.Play(0)
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestSessionBoardIsACopy(t *testing.T) {
	s := NewSession(game.A)
	b := s.Board()
	_, err := b.ApplyMove(0, game.B)
	require.NoError(t, err)
	require.Equal(t, 0, s.Board().Count())
}

func TestSessionReset(t *testing.T) {
	s := NewSession(game.A)
	_, err := s.Play(0)
	require.NoError(t, err)

	s.Reset(game.B)
	require.Equal(t, 0, s.Board().Count())
	require.Equal(t, game.B, s.Turn())
	require.Empty(t, s.History())
	require.Equal(t, game.Ongoing, s.Outcome().Status)

	s.Reset(game.Empty)
	require.Equal(t, game.A, s.First())
}
