package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Mark is the token a player places in a cell. EmptyCell marks a free cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// Board is a row-major 3x3 grid.
type Board [BoardSize]Mark

// IsPlayer reports whether the mark is X or O.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// ParseMark - converts "X"/"O" (case-insensitive) into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PlayerX):
		return PlayerX, nil
	case string(PlayerO):
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: mark %q", apperror.ErrInvalidMove, s)
	}
}

// ParseBoard - reads a 9 character board such as "OO_XX____".
// X and O are marks, any of "_", ".", "-" or a space is an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board

	if len(s) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(s))
	}

	var xCount, oCount int
	for i, r := range strings.ToUpper(s) {
		switch r {
		case 'X':
			board[i] = PlayerX
			xCount++
		case 'O':
			board[i] = PlayerO
			oCount++
		case '_', '.', '-', ' ':
			board[i] = EmptyCell
		default:
			return board, fmt.Errorf("%w: unexpected %q at %d", apperror.ErrInvalidBoard, r, i)
		}
	}

	// X always moves first
	if oCount != xCount && oCount != xCount-1 {
		return board, fmt.Errorf("%w: %d X and %d O marks", apperror.ErrInvalidBoard, xCount, oCount)
	}

	return board, nil
}

// String renders the board in the same compact form ParseBoard accepts.
func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}
	return sb.String()
}
