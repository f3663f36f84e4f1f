package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
)

func selfPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selfplay",
		Short: "Let the computer play both sides from an empty board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			theme := tui.DefaultTheme()

			board := entity.Board{}
			mark := entity.PlayerX

			for !tictactoe.Evaluate(board).IsFinished() {
				cell, err := tictactoe.SelectMove(board, mark)
				if err != nil {
					return fmt.Errorf("failed to select move: %w", err)
				}

				board, err = tictactoe.ApplyMove(board, cell, mark)
				if err != nil {
					return fmt.Errorf("failed to apply move: %w", err)
				}

				fmt.Fprintf(out, "%s -> %d\n%s\n", mark, cell, theme.RenderBoard(board, -1))

				mark = tictactoe.NextMark(mark)
			}

			switch outcome := tictactoe.Evaluate(board); outcome.State {
			case entity.StateWin:
				fmt.Fprintln(out, entity.WinMessage(outcome.Winner))
			default:
				fmt.Fprintln(out, entity.DrawMessage)
			}

			return nil
		},
	}
}
