package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// drawBoard is full with no four in a row for either player.
var drawBoard = []string{
	"AABBAAB",
	"BBAABBA",
	"AABBAAB",
	"BBAABBA",
	"AABBAAB",
	"BBAABBA",
}

// lineThrough checks every window containing (row, col) directly.
func lineThrough(b *Board, player Player, row, col int) bool {
	for _, ax := range axes {
		for offset := 0; offset < InARow; offset++ {
			r0, c0 := row-ax.dr*offset, col-ax.dc*offset
			all := true
			for i := 0; i < InARow; i++ {
				r, c := r0+ax.dr*i, c0+ax.dc*i
				if !inBounds(r, c) || b.At(r, c) != player {
					all = false
					break
				}
			}
			if all {
				return true
			}
		}
	}
	return false
}

func TestHasWinThrough(t *testing.T) {
	t.Run("vertical stack in the center column", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < 4; i++ {
			row, err := b.ApplyMove(3, A)
			require.NoError(t, err)
			if i < 3 {
				require.False(t, HasWinThrough(b, A, row, 3), "drop %d should not win", i+1)
			}
		}
		require.True(t, HasWinThrough(b, A, 5, 3))
		require.True(t, HasWinThrough(b, A, 2, 3))
		require.False(t, HasWinThrough(b, B, 5, 3))
	})

	tests := []struct {
		name     string
		rows     []string
		row, col int
		player   Player
		want     bool
	}{
		{
			name: "horizontal anchored in the middle of the line",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				".BBBB..",
			},
			row: 5, col: 2, player: B, want: true,
		},
		{
			name: "diagonal \\",
			rows: []string{
				".......",
				".......",
				"A......",
				"BA.....",
				"BBA....",
				"BBBA...",
			},
			row: 4, col: 2, player: A, want: true,
		},
		{
			name: "diagonal /",
			rows: []string{
				".......",
				".......",
				"......B",
				".....BA",
				"....BAA",
				"...BAAA",
			},
			row: 2, col: 6, player: B, want: true,
		},
		{
			name: "three with a gap is not a win",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"AA.AA..",
			},
			row: 5, col: 1, player: A, want: false,
		},
		{
			name: "anchor owned by the other player",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"AAAAB..",
			},
			row: 5, col: 4, player: A, want: false,
		},
		{
			name: "empty anchor",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"AAAA...",
			},
			row: 0, col: 0, player: A, want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows...)
			require.Equal(t, tt.want, HasWinThrough(b, tt.player, tt.row, tt.col))
		})
	}

	t.Run("agrees with a direct window check on random boards", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for i := 0; i < 300; i++ {
			b := randomBoard(r, r.Intn(Rows*Cols+1))
			for row := 0; row < Rows; row++ {
				for col := 0; col < Cols; col++ {
					for _, p := range []Player{A, B} {
						require.Equal(t, lineThrough(b, p, row, col), HasWinThrough(b, p, row, col),
							"player %s at (%d,%d) on\n%s", p, row, col, b)
					}
				}
			}
		}
	})
}

func TestHasWin(t *testing.T) {
	t.Run("finds a win far from the origin", func(t *testing.T) {
		b := mustBoard(t,
			".......",
			".......",
			".......",
			".......",
			"...AAA.",
			"...BBBB",
		)
		require.True(t, HasWin(b, B))
		require.False(t, HasWin(b, A))
	})

	t.Run("agrees with anchored checks on random boards", func(t *testing.T) {
		r := rand.New(rand.NewSource(3))
		for i := 0; i < 300; i++ {
			b := randomBoard(r, r.Intn(Rows*Cols+1))
			for _, p := range []Player{A, B} {
				anchored := false
				for row := 0; row < Rows && !anchored; row++ {
					for col := 0; col < Cols; col++ {
						if lineThrough(b, p, row, col) {
							anchored = true
							break
						}
					}
				}
				require.Equal(t, anchored, HasWin(b, p), "player %s on\n%s", p, b)
			}
		}
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := mustBoard(t, drawBoard...)
		require.Empty(t, b.ValidColumns())
		require.True(t, b.IsFull())
		require.False(t, HasWin(b, A))
		require.False(t, HasWin(b, B))
		require.Equal(t, Outcome{Status: Draw}, OutcomeOf(b))
	})
}

func TestOutcomeOf(t *testing.T) {
	require.Equal(t, Outcome{Status: Ongoing}, OutcomeOf(NewBoard()))

	b := mustBoard(t,
		".......",
		".......",
		"..B....",
		"..BA...",
		"..BA...",
		"..BA...",
	)
	require.Equal(t, Outcome{Status: Won, Winner: B}, OutcomeOf(b))
	require.Equal(t, "won", OutcomeOf(b).Status.String())
}
