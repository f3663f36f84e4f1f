package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - wires the session store and services and runs the terminal UI until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return fmt.Errorf("invalid mode in config: %w", err)
	}

	computerMark, err := entity.ParseMark(conf.ComputerMark)
	if err != nil {
		return fmt.Errorf("invalid computer mark in config: %w", err)
	}

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close session storage", "error", err)
		}
	}()

	botService := service.NewBotService(logger)
	sessionService := service.NewSessionService(logger, botService)
	gameManager := usecase.NewGameManager(logger, sessionRepo, sessionService)

	session, err := gameManager.NewSession(ctx, mode, computerMark)
	if err != nil {
		return fmt.Errorf("could not start session: %w", err)
	}

	log.Info("Starting terminal UI", "session", session.ID, "storage", conf.Storage)

	runErr := tui.Run(ctx, logger, gameManager, session)

	// the session lives only as long as the window
	if err = gameManager.CloseSession(context.WithoutCancel(ctx), session.ID); err != nil {
		log.Error("could not close session", "error", err)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	log.Info("Terminal UI closed")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory, "":
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorage, conf.Storage)
	}
}
