package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/service"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager loads a session, applies one step through the session service and stores the result.
// A failed step is never stored, so the repository always holds a consistent board.
type GameManager struct {
	logger *slog.Logger

	sessionRepo    sessionRepo
	sessionService service.SessionService
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, sessionService service.SessionService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo:    sessionRepo,
		sessionService: sessionService,
	}
}

// NewSession - creates and stores a session. If the computer plays X it has already moved.
func (that *GameManager) NewSession(ctx context.Context, mode entity.Mode, computerMark entity.Mark) (*entity.Session, error) {
	parsed, err := entity.ParseMode(string(mode))
	if err != nil {
		return nil, fmt.Errorf("failed create session: %w", err)
	}

	if !computerMark.IsPlayer() {
		computerMark = entity.PlayerO
	}

	session := entity.NewSession(uuid.NewString(), parsed, computerMark)

	if err := that.sessionService.Restart(session); err != nil {
		return nil, fmt.Errorf("failed start round: %w", err)
	}

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("session created", "session", session.ID, "mode", parsed, "computer", computerMark)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeTurn - the human's move plus the computer's answer, if any.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error) {
	return that.update(ctx, id, "makeTurn", func(session *entity.Session) error {
		return that.sessionService.Play(session, cell)
	})
}

func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, "restart", that.sessionService.Restart)
}

func (that *GameManager) SwitchMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error) {
	return that.update(ctx, id, "switchMode", func(session *entity.Session) error {
		return that.sessionService.SetMode(session, mode)
	})
}

// CloseSession - drops the session from the store; scores do not outlive the window.
func (that *GameManager) CloseSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session closed", "session", id)

	return nil
}

func (that *GameManager) update(ctx context.Context, id, method string, step func(*entity.Session) error) (*entity.Session, error) {
	log := that.logger.With("method", method, "session", id)

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = step(session); err != nil {
		log.Warn("step rejected", "error", err)

		stored, getErr := that.GetSession(ctx, id)
		if getErr != nil {
			return nil, fmt.Errorf("failed %s: %w", method, err)
		}

		return stored, fmt.Errorf("failed %s: %w", method, err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	log.Debug("session updated", "board", session.Board.String(), "turn", session.Turn, "active", session.Active)

	return session, nil
}
