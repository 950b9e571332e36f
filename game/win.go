package game

// axis is a (row, col) step. Each axis is walked in both directions.
type axis struct {
	dr, dc int
}

var axes = [4]axis{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// HasWinThrough reports whether player has at least InARow contiguous tokens on some axis
// passing through (row, col). The anchor cell itself must belong to player.
func HasWinThrough(b *Board, player Player, row, col int) bool {
	if player == Empty || !inBounds(row, col) || b.cells[row][col] != player {
		return false
	}
	for _, ax := range axes {
		count := 1 + b.run(player, row, col, ax.dr, ax.dc) + b.run(player, row, col, -ax.dr, -ax.dc)
		if count >= InARow {
			return true
		}
	}
	return false
}

// HasWin scans every cell as a candidate anchor.
func HasWin(b *Board, player Player) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if HasWinThrough(b, player, r, c) {
				return true
			}
		}
	}
	return false
}

// run counts player's tokens stepping away from (row, col), excluding the anchor.
func (b *Board) run(player Player, row, col, dr, dc int) int {
	n := 0
	for i := 1; i < InARow; i++ {
		r, c := row+dr*i, col+dc*i
		if !inBounds(r, c) || b.cells[r][c] != player {
			break
		}
		n++
	}
	return n
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Status of a game derived from the board.
type Status int

const (
	Ongoing Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Outcome is computed from a board, never stored. Winner is Empty unless Status is Won.
type Outcome struct {
	Status Status
	Winner Player
}

// OutcomeOf derives the outcome of b. If both players somehow hold a line, A is reported.
func OutcomeOf(b *Board) Outcome {
	for _, p := range []Player{A, B} {
		if HasWin(b, p) {
			return Outcome{Status: Won, Winner: p}
		}
	}
	if b.IsFull() {
		return Outcome{Status: Draw}
	}
	return Outcome{Status: Ongoing}
}
