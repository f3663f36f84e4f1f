package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
)

type moveResult struct {
	Board string      `json:"board"`
	Mark  entity.Mark `json:"mark"`
	Cell  int         `json:"cell"`
	Score int         `json:"score"`
}

func moveCmd() *cobra.Command {
	var boardFlag string
	var markFlag string
	var format string

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Print the computer's choice for a board",
		Example: `  tictactoe move --board "OO_XX____" --mark X
  tictactoe move --board "X________" --mark O --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := entity.ParseBoard(boardFlag)
			if err != nil {
				return err
			}

			mark, err := entity.ParseMark(markFlag)
			if err != nil {
				return err
			}

			cell, err := tictactoe.SelectMove(board, mark)
			if err != nil {
				return fmt.Errorf("failed to select move: %w", err)
			}

			next, err := tictactoe.ApplyMove(board, cell, mark)
			if err != nil {
				return fmt.Errorf("failed to apply move: %w", err)
			}

			result := moveResult{
				Board: board.String(),
				Mark:  mark,
				Cell:  cell,
				Score: tictactoe.Score(next, mark.Opponent()),
			}

			return printMove(cmd.OutOrStdout(), next, result, format)
		},
	}

	cmd.Flags().StringVarP(&boardFlag, "board", "b", "", `9 cells row by row: X, O and "_" for empty`)
	cmd.Flags().StringVar(&markFlag, "mark", "O", "mark to move: X|O")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|json")

	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func printMove(w io.Writer, next entity.Board, result moveResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	case "text", "":
		_, err := fmt.Fprintf(w, "%s\n%s plays cell %d (score %d)\n",
			tui.DefaultTheme().RenderBoard(next, result.Cell), result.Mark, result.Cell, result.Score)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
