package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Lines are the index triples that win when uniformly marked: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// EmptyCells - returns the free positions in ascending order.
func EmptyCells(board entity.Board) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

// HasWon - checks whether any line is entirely the given mark.
func HasWon(board entity.Board, mark entity.Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, line := range Lines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return true
		}
	}
	return false
}

// IsDraw - full board and no winner.
func IsDraw(board entity.Board) bool {
	if HasWon(board, entity.PlayerX) || HasWon(board, entity.PlayerO) {
		return false
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}
	return true
}

// ApplyMove - places mark on cell and returns the resulting board. The passed board is left as is.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, err
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d is occupied", apperror.ErrInvalidMove, cell)
	}

	return nil
}

// Evaluate - derives the outcome of a board. X is checked first, a legal board never has two winners.
func Evaluate(board entity.Board) entity.Outcome {
	switch {
	case HasWon(board, entity.PlayerX):
		return entity.Outcome{State: entity.StateWin, Winner: entity.PlayerX}
	case HasWon(board, entity.PlayerO):
		return entity.Outcome{State: entity.StateWin, Winner: entity.PlayerO}
	case IsDraw(board):
		return entity.Outcome{State: entity.StateDraw}
	default:
		return entity.Outcome{State: entity.StateInProgress}
	}
}

// NextMark - toggles between X and O.
func NextMark(currentMark entity.Mark) entity.Mark {
	return currentMark.Opponent()
}
