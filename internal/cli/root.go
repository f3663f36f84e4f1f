package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const defaultConfigPath = "config.yml"

// Execute - builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Tic-tac-toe against a friend or an unbeatable computer",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the yaml config file")

	cmd.AddCommand(
		playCmd(&configPath),
		moveCmd(),
		selfPlayCmd(),
	)

	return cmd
}

// initLogger - JSON logs at the configured level. The terminal belongs to the UI, so logs go to a file
// unless log-file is "-".
func initLogger(conf *config.Config) (*slog.Logger, func() error, error) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var (
		out     io.Writer = os.Stdout
		closeFn           = func() error { return nil }
	)

	switch conf.LogFile {
	case "-":
	case "":
		out = io.Discard
	default:
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closeFn = file.Close
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeFn, nil
}
