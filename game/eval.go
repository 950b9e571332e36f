package game

// Weights are the heuristic values used by the window evaluator.
type Weights struct {
	Center        int `json:"center"`         // Per own token in the center column
	Four          int `json:"four"`           // 4 own
	Three         int `json:"three"`          // 3 own + 1 empty
	Two           int `json:"two"`            // 2 own + 2 empty
	OpponentThree int `json:"opponent_three"` // 3 opponent + 1 empty
}

var DefaultWeights = Weights{
	Center:        3,
	Four:          100,
	Three:         10,
	Two:           5,
	OpponentThree: -15,
}

// Score evaluates b from player's perspective with DefaultWeights.
func Score(b *Board, player Player) int {
	return DefaultWeights.score(b, player)
}

// NewEvaluator returns an Evaluator bound to w.
func NewEvaluator(w Weights) Evaluator {
	return w.score
}

// score tallies center column occupancy and every 4-cell window on the four axes.
func (w Weights) score(b *Board, player Player) int {
	opponent := player.Opponent()
	score := 0

	center := Cols / 2
	for r := 0; r < Rows; r++ {
		if b.cells[r][center] == player {
			score += w.Center
		}
	}

	var window [InARow]Player
	// Horizontal
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-InARow; c++ {
			for i := range window {
				window[i] = b.cells[r][c+i]
			}
			score += w.window(window, player, opponent)
		}
	}
	// Vertical
	for r := 0; r <= Rows-InARow; r++ {
		for c := 0; c < Cols; c++ {
			for i := range window {
				window[i] = b.cells[r+i][c]
			}
			score += w.window(window, player, opponent)
		}
	}
	// Diagonal \
	for r := 0; r <= Rows-InARow; r++ {
		for c := 0; c <= Cols-InARow; c++ {
			for i := range window {
				window[i] = b.cells[r+i][c+i]
			}
			score += w.window(window, player, opponent)
		}
	}
	// Diagonal /
	for r := InARow - 1; r < Rows; r++ {
		for c := 0; c <= Cols-InARow; c++ {
			for i := range window {
				window[i] = b.cells[r-i][c+i]
			}
			score += w.window(window, player, opponent)
		}
	}

	return score
}

func (w Weights) window(window [InARow]Player, player, opponent Player) int {
	own, theirs, empty := 0, 0, 0
	for _, cell := range window {
		switch cell {
		case player:
			own++
		case opponent:
			theirs++
		default:
			empty++
		}
	}

	switch {
	case own == 4:
		return w.Four
	case own == 3 && empty == 1:
		return w.Three
	case own == 2 && empty == 2:
		return w.Two
	case theirs == 3 && empty == 1:
		return w.OpponentThree
	}
	return 0
}
