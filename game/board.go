package game

import (
	"fmt"
	"strings"
)

// Board is the game grid. Row 0 is the top row and tokens settle towards row Rows-1.
// The grid is an array so that copying a Board never shares cells.
type Board struct {
	cells [Rows][Cols]Player
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// BoardFromRows builds a board from Rows strings of Cols characters, top row first.
// '.' is empty, 'A' or 'X' is player A and 'B' or 'O' is player B.
func BoardFromRows(rows []string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("expected %d rows, got %d", Rows, len(rows))
	}
	b := NewBoard()
	for r, line := range rows {
		if len(line) != Cols {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", r, Cols, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '.', ' ':
				b.cells[r][c] = Empty
			case 'A', 'X':
				b.cells[r][c] = A
			case 'B', 'O':
				b.cells[r][c] = B
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected cell %q", r, c, ch)
			}
		}
	}
	// Tokens must rest on the bottom or on another token
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows-1; r++ {
			if b.cells[r][c] != Empty && b.cells[r+1][c] == Empty {
				return nil, fmt.Errorf("col %d: token at row %d is floating", c, r)
			}
		}
	}
	return b, nil
}

// At returns the cell at (row, col).
func (b *Board) At(row, col int) Player {
	return b.cells[row][col]
}

// ApplyMove drops player's token into column and returns the row it landed in.
// The board is left unchanged when the player is not A or B, or the column is out of range or full.
func (b *Board) ApplyMove(column int, player Player) (int, error) {
	if err := checkPlayer(player); err != nil {
		return -1, err
	}
	if err := checkColumn(column); err != nil {
		return -1, err
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			b.cells[row][column] = player
			return row, nil
		}
	}
	return -1, &FullColumnError{Column: column}
}

// Undo removes the topmost token of column and returns the row it was taken from.
func (b *Board) Undo(column int) (int, error) {
	if err := checkColumn(column); err != nil {
		return -1, err
	}
	for row := 0; row < Rows; row++ {
		if b.cells[row][column] != Empty {
			b.cells[row][column] = Empty
			return row, nil
		}
	}
	return -1, fmt.Errorf("column %d is empty", column)
}

// ValidColumns returns the columns whose top cell is empty, in ascending order.
func (b *Board) ValidColumns() []int {
	columns := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b.cells[0][c] == Empty {
			columns = append(columns, c)
		}
	}
	return columns
}

// IsFull reports whether no column accepts another token.
func (b *Board) IsFull() bool {
	return len(b.ValidColumns()) == 0
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the board top row first, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteString(b.cells[r][c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
