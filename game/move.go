package game

import "fmt"

// FullColumnError is returned when a token is dropped into a column with no empty cell.
type FullColumnError struct {
	Column int
}

func (e *FullColumnError) Error() string {
	return fmt.Sprintf("column %d is full", e.Column)
}

// InvalidColumnError is returned for a column index outside [0, Cols).
type InvalidColumnError struct {
	Column int
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("column %d is out of range [0, %d)", e.Column, Cols)
}

// InvalidPlayerError is returned when a token is dropped for a player other than A or B.
type InvalidPlayerError struct {
	Player Player
}

func (e *InvalidPlayerError) Error() string {
	return fmt.Sprintf("player %d cannot place a token", uint8(e.Player))
}

// Move is a column drop by a player, along with the row the token landed in.
type Move struct {
	Player Player
	Column int
	Row    int
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%d", m.Player, m.Column)
}

func checkPlayer(player Player) error {
	if player != A && player != B {
		return &InvalidPlayerError{Player: player}
	}
	return nil
}

func checkColumn(column int) error {
	if column < 0 || column >= Cols {
		return &InvalidColumnError{Column: column}
	}
	return nil
}
