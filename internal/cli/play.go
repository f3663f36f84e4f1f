package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

func playCmd(configPath *string) *cobra.Command {
	var mode string
	var computerMark string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game board in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cmd.Flags().Changed("mode") {
				conf.Mode = mode
			}

			if cmd.Flags().Changed("computer-mark") {
				conf.ComputerMark = computerMark
			}

			logger, closeLog, err := initLogger(conf)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			return app.RunApp(logger, conf)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "game mode: human|computer (overrides config)")
	cmd.Flags().StringVar(&computerMark, "computer-mark", "", "mark the computer plays: X|O (overrides config)")

	return cmd
}
