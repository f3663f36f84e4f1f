package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

// SessionService drives one game window: turn order, results, score and restarts.
// It holds no state of its own, everything lives in the session passed in.
type SessionService interface {
	Play(session *entity.Session, cell int) error
	Restart(session *entity.Session) error
	SetMode(session *entity.Session, mode entity.Mode) error
}

type sessionService struct {
	logger *slog.Logger

	botService BotService
}

func NewSessionService(logger *slog.Logger, botService BotService) SessionService {
	return &sessionService{
		logger:     logger.With("component", "session"),
		botService: botService,
	}
}

// Play - places the current player's mark on cell, then lets the computer answer if it is its turn.
func (that *sessionService) Play(session *entity.Session, cell int) error {
	if !session.Active {
		return apperror.ErrGameFinished
	}

	if session.IsComputersTurn() {
		return fmt.Errorf("%w: it's the computer's turn", apperror.ErrInvalidMove)
	}

	board, err := tictactoe.ApplyMove(session.Board, cell, session.Turn)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}
	session.Board = board

	that.logger.Debug("player moved", "session", session.ID, "mark", session.Turn, "cell", cell)

	return that.checkResult(session)
}

// Restart - clears the board and hands the first move to X. The score is kept.
func (that *sessionService) Restart(session *entity.Session) error {
	session.Board = entity.Board{}
	session.Turn = entity.PlayerX
	session.Active = true
	session.Outcome = entity.Outcome{State: entity.StateInProgress}
	session.Message = entity.TurnMessage(session.Turn)

	that.logger.Debug("round restarted", "session", session.ID, "mode", session.Mode, "score", session.Score)

	if session.IsComputersTurn() {
		return that.computerMove(session)
	}

	return nil
}

// SetMode - switching modes always starts a new round.
func (that *sessionService) SetMode(session *entity.Session, mode entity.Mode) error {
	parsed, err := entity.ParseMode(string(mode))
	if err != nil {
		return err
	}

	session.Mode = parsed

	return that.Restart(session)
}

// checkResult - evaluates the board after a move and either ends the round or passes the turn.
func (that *sessionService) checkResult(session *entity.Session) error {
	outcome := tictactoe.Evaluate(session.Board)
	session.Outcome = outcome

	switch outcome.State {
	case entity.StateWin:
		session.Active = false
		session.Score.Record(outcome.Winner)
		session.Message = entity.WinMessage(outcome.Winner)

		that.logger.Info("round won", "session", session.ID, "winner", outcome.Winner, "score", session.Score)

		return nil
	case entity.StateDraw:
		session.Active = false
		session.Message = entity.DrawMessage

		that.logger.Info("round drawn", "session", session.ID, "score", session.Score)

		return nil
	}

	session.Turn = tictactoe.NextMark(session.Turn)
	session.Message = entity.TurnMessage(session.Turn)

	if session.IsComputersTurn() {
		return that.computerMove(session)
	}

	return nil
}

func (that *sessionService) computerMove(session *entity.Session) error {
	if _, err := that.botService.MakeTurn(session); err != nil {
		return fmt.Errorf("computer failed to move: %w", err)
	}

	return that.checkResult(session)
}
