package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type Theme struct {
	Title  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Board  lipgloss.Style
	Cell   lipgloss.Style
	Cursor lipgloss.Style
	X      lipgloss.Style
	O      lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:   lipgloss.NewStyle().Faint(true),
		Board: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Cell:   lipgloss.NewStyle().Width(3).Align(lipgloss.Center),
		Cursor: lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Reverse(true),
		X:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		O:      lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
	}
}

// RenderBoard - draws the 3x3 grid. cursor < 0 hides the cursor, free cells show their 1-9 key.
func (that Theme) RenderBoard(board entity.Board, cursor int) string {
	rows := make([]string, 0, 5)
	for row := 0; row < 3; row++ {
		line := make([]string, 0, 5)
		for col := 0; col < 3; col++ {
			idx := row*3 + col

			label := that.mark(board[idx])
			if board[idx] == entity.EmptyCell {
				label = that.Help.Render(string(rune('1' + idx)))
			}

			style := that.Cell
			if idx == cursor {
				style = that.Cursor
			}

			line = append(line, style.Render(label))
			if col < 2 {
				line = append(line, "│")
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
		if row < 2 {
			rows = append(rows, "───┼───┼───")
		}
	}

	return that.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (that Theme) mark(m entity.Mark) string {
	switch m {
	case entity.PlayerX:
		return that.X.Render(string(m))
	case entity.PlayerO:
		return that.O.Render(string(m))
	default:
		return string(m)
	}
}
