package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type BotService interface {
	MakeTurn(session *entity.Session) (int, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn - picks the computer's cell with minimax and places its mark. The caller evaluates the result.
func (that *botService) MakeTurn(session *entity.Session) (int, error) {
	if session.Turn != session.ComputerMark {
		return -1, apperror.ErrNotComputersTurn
	}

	cell, err := tictactoe.SelectMove(session.Board, session.ComputerMark)
	if err != nil {
		return -1, fmt.Errorf("bot failed to select move: %w", err)
	}

	board, err := tictactoe.ApplyMove(session.Board, cell, session.ComputerMark)
	if err != nil {
		return -1, fmt.Errorf("bot failed to make turn: %w", err)
	}
	session.Board = board

	that.logger.Debug("bot moved", "session", session.ID, "mark", session.ComputerMark, "cell", cell, "board", board.String())

	return cell, nil
}
