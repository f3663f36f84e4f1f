package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameManager interface {
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	SwitchMode(ctx context.Context, id string, mode entity.Mode) (*entity.Session, error)
}

const helpLine = "←↑↓→/hjkl move • enter place • 1-9 place • r restart • m mode • q quit"

// Model is the terminal front end of one session. Every key press is handled to completion,
// including the computer's answer, before the next one is read.
type Model struct {
	ctx     context.Context
	logger  *slog.Logger
	manager gameManager
	theme   Theme

	session *entity.Session
	cursor  int
	err     error
}

func New(ctx context.Context, logger *slog.Logger, manager gameManager, session *entity.Session) Model {
	return Model{
		ctx:     ctx,
		logger:  logger.With("component", "tui"),
		manager: manager,
		theme:   DefaultTheme(),
		session: session,
		cursor:  4,
	}
}

// Run - blocks until the player quits or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager, session *entity.Session) error {
	program := tea.NewProgram(New(ctx, logger, manager, session), tea.WithContext(ctx), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		// killed by a signal, not a failure
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui failed: %w", err)
	}

	return nil
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c", "q", "esc":
		return that, tea.Quit
	case "up", "k":
		if that.cursor >= 3 {
			that.cursor -= 3
		}
	case "down", "j":
		if that.cursor < 6 {
			that.cursor += 3
		}
	case "left", "h":
		if that.cursor%3 > 0 {
			that.cursor--
		}
	case "right", "l":
		if that.cursor%3 < 2 {
			that.cursor++
		}
	case "enter", " ", "space":
		that = that.apply(that.manager.MakeTurn(that.ctx, that.session.ID, that.cursor))
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		that.cursor = int(key[0] - '1')
		that = that.apply(that.manager.MakeTurn(that.ctx, that.session.ID, that.cursor))
	case "r":
		that = that.apply(that.manager.Restart(that.ctx, that.session.ID))
	case "m":
		that = that.apply(that.manager.SwitchMode(that.ctx, that.session.ID, toggleMode(that.session.Mode)))
	}

	return that, nil
}

func (that Model) View() string {
	var sb strings.Builder

	sb.WriteString(that.theme.Title.Render("Tic-Tac-Toe"))
	sb.WriteString("\n\n")
	sb.WriteString(that.theme.RenderBoard(that.session.Board, that.cursor))
	sb.WriteString("\n\n")
	sb.WriteString(that.theme.Status.Render(that.session.Message))
	sb.WriteString("\n")

	if that.err != nil {
		sb.WriteString(that.theme.Error.Render(that.err.Error()))
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nMode: %s    Player X: %d    Player O: %d\n", modeLabel(that.session), that.session.Score.X, that.session.Score.O)
	sb.WriteString(that.theme.Help.Render(helpLine))
	sb.WriteString("\n")

	return sb.String()
}

// Session - the last state received from the manager.
func (that Model) Session() *entity.Session {
	return that.session
}

func (that Model) apply(session *entity.Session, err error) Model {
	if session != nil {
		that.session = session
	}

	that.err = err
	if err != nil {
		that.logger.Warn("action failed", "session", that.session.ID, "error", err)
	}

	return that
}

func toggleMode(mode entity.Mode) entity.Mode {
	if mode == entity.ModeComputer {
		return entity.ModeHuman
	}
	return entity.ModeComputer
}

func modeLabel(session *entity.Session) string {
	if session.Mode == entity.ModeComputer {
		return fmt.Sprintf("vs computer (%s)", session.ComputerMark)
	}
	return "vs player"
}
