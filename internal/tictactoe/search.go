package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Terminal scores. O maximizes, X minimizes. Depth does not matter.
const (
	ScoreXWins = -10
	ScoreOWins = 10
	ScoreDraw  = 0
)

// SelectMove - returns the best cell for mark by exhaustive minimax.
// Ties go to the lowest index: only a strictly better score replaces the current best.
// A cell that wins on the spot is always among the best and is taken before the search runs.
func SelectMove(board entity.Board, mark entity.Mark) (int, error) {
	if !mark.IsPlayer() {
		return -1, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMove, mark)
	}

	cells := EmptyCells(board)
	if len(cells) == 0 {
		return -1, apperror.ErrNoAvailableMove
	}

	if outcome := Evaluate(board); outcome.IsFinished() {
		return -1, fmt.Errorf("%w: %s already won", apperror.ErrNoAvailableMove, outcome.Winner)
	}

	if cell, ok := winningCell(board, cells, mark); ok {
		return cell, nil
	}

	cell, _ := minimax(board, mark)

	return cell, nil
}

// winningCell - first free cell that completes a line for mark.
func winningCell(board entity.Board, cells []int, mark entity.Mark) (int, bool) {
	for _, cell := range cells {
		child := board
		child[cell] = mark
		if HasWon(child, mark) {
			return cell, true
		}
	}
	return -1, false
}

// Score - minimax value of the board with mark to move.
func Score(board entity.Board, mark entity.Mark) int {
	_, score := minimax(board, mark)
	return score
}

// minimax works on its own copy of the board: every branch gets a fresh array value,
// so nothing placed while exploring one cell is visible to its siblings or the caller.
func minimax(board entity.Board, mark entity.Mark) (int, int) {
	if score, ok := terminalScore(board); ok {
		return -1, score
	}

	bestCell := -1
	bestScore := math.MinInt
	if mark == entity.PlayerX {
		bestScore = math.MaxInt
	}

	for _, cell := range EmptyCells(board) {
		child := board
		child[cell] = mark

		_, score := minimax(child, mark.Opponent())

		if isBetter(mark, score, bestScore) {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, bestScore
}

func terminalScore(board entity.Board) (int, bool) {
	switch {
	case HasWon(board, entity.PlayerX):
		return ScoreXWins, true
	case HasWon(board, entity.PlayerO):
		return ScoreOWins, true
	case len(EmptyCells(board)) == 0:
		return ScoreDraw, true
	default:
		return 0, false
	}
}

func isBetter(mark entity.Mark, score, best int) bool {
	if mark == entity.PlayerO {
		return score > best
	}
	return score < best
}
