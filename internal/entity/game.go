package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// State is the phase of a round derived from the board.
type State string

const (
	StateInProgress State = "in_progress"
	StateWin        State = "win"
	StateDraw       State = "draw"
)

// Mode selects who plays the second seat.
type Mode string

const (
	ModeHuman    Mode = "human"
	ModeComputer Mode = "computer"
)

// ParseMode - converts a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeHuman, ModeComputer:
		return Mode(s), nil
	// the original game's select values
	case "vs-player":
		return ModeHuman, nil
	case "vs-ai":
		return ModeComputer, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, s)
	}
}

// Outcome is recomputed from the board after every move. Winner is set only for StateWin.
type Outcome struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

// IsFinished - true once the round is won or drawn.
func (that Outcome) IsFinished() bool {
	return that.State == StateWin || that.State == StateDraw
}

// Score counts won rounds per mark. Draws are not counted.
type Score struct {
	X int `json:"x"`
	O int `json:"o"`
}

// Record - adds one win for the mark.
func (that *Score) Record(winner Mark) {
	switch winner {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

// Session is the state of one game window: the current round plus everything that outlives it.
type Session struct {
	ID           string  `json:"id"`
	Board        Board   `json:"board"`
	Turn         Mark    `json:"turn"`
	Active       bool    `json:"active"`
	Mode         Mode    `json:"mode"`
	ComputerMark Mark    `json:"computer_mark"`
	Score        Score   `json:"score"`
	Outcome      Outcome `json:"outcome"`
	Message      string  `json:"message"`
}

// NewSession - a fresh session with an empty board and X to move.
func NewSession(id string, mode Mode, computerMark Mark) *Session {
	return &Session{
		ID:           id,
		Board:        Board{},
		Turn:         PlayerX,
		Active:       true,
		Mode:         mode,
		ComputerMark: computerMark,
		Outcome:      Outcome{State: StateInProgress},
		Message:      TurnMessage(PlayerX),
	}
}

// IsComputersTurn reports whether the bot should move next.
func (that *Session) IsComputersTurn() bool {
	return that.Active && that.Mode == ModeComputer && that.Turn == that.ComputerMark
}

// TurnMessage - status line while a round is running.
func TurnMessage(turn Mark) string {
	return fmt.Sprintf("It's %s's turn", turn)
}

// WinMessage - status line for a won round.
func WinMessage(winner Mark) string {
	return fmt.Sprintf("Player %s wins!", winner)
}

const DrawMessage = "Game is a draw!"
