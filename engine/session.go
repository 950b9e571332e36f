package engine

import (
	"connect4/game"
	"errors"
	"fmt"
)

var ErrGameOver = errors.New("game is over")

// Session owns one live game: its board, whose turn it is and the moves played so far.
// Human and engine moves both go through Play.
type Session struct {
	board   *game.Board
	first   game.Player
	turn    game.Player
	history []game.Move
	outcome game.Outcome
}

// NewSession starts an empty game where first moves first.
func NewSession(first game.Player) *Session {
	s := &Session{}
	s.Reset(first)
	return s
}

// Reset clears the board for a new game.
func (s *Session) Reset(first game.Player) {
	if first != game.A && first != game.B {
		first = game.A
	}
	s.board = game.NewBoard()
	s.first = first
	s.turn = first
	s.history = nil
	s.outcome = game.Outcome{Status: game.Ongoing}
}

// Board returns a copy of the live board.
func (s *Session) Board() *game.Board {
	return s.board.Clone()
}

func (s *Session) Turn() game.Player {
	return s.turn
}

func (s *Session) First() game.Player {
	return s.first
}

func (s *Session) Outcome() game.Outcome {
	return s.outcome
}

func (s *Session) History() []game.Move {
	history := make([]game.Move, len(s.history))
	copy(history, s.history)
	return history
}

// Play drops a token for the player to move. On error the session is unchanged.
func (s *Session) Play(column int) (game.Move, error) {
	if s.outcome.Status != game.Ongoing {
		return game.Move{}, ErrGameOver
	}

	row, err := s.board.ApplyMove(column, s.turn)
	if err != nil {
		return game.Move{}, fmt.Errorf("player %s cannot play: %w", s.turn, err)
	}
	move := game.Move{Player: s.turn, Column: column, Row: row}
	s.history = append(s.history, move)

	switch {
	case game.HasWinThrough(s.board, s.turn, row, column):
		s.outcome = game.Outcome{Status: game.Won, Winner: s.turn}
	case s.board.IsFull():
		s.outcome = game.Outcome{Status: game.Draw}
	default:
		s.turn = s.turn.Opponent()
	}
	return move, nil
}
