package game

// Board dimensions. The engine plays on a fixed 6x7 grid.
const (
	Rows = 6
	Cols = 7
)

// InARow is the number of aligned tokens needed to win.
const InARow = 4

// Player identifies a token owner. Empty doubles as the value of an unoccupied cell.
type Player uint8

const (
	Empty Player = iota
	A            // Human by convention
	B            // Automated player by convention
)

// Opponent returns the other player. Empty has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case A:
		return B
	case B:
		return A
	default:
		return Empty
	}
}

func (p Player) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "."
	}
}

// Evaluator scores a non-terminal board from player's perspective.
type Evaluator func(b *Board, player Player) int
