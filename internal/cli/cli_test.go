package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMoveCmd(t *testing.T) {
	t.Run("O takes the win", func(t *testing.T) {
		out, err := runRoot(t, "move", "--board", "OO_XX____", "--mark", "O", "--format", "json")
		require.NoError(t, err)

		var result moveResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, moveResult{Board: "OO_XX____", Mark: entity.PlayerO, Cell: 2, Score: 10}, result)
	})

	t.Run("X closes its own row", func(t *testing.T) {
		out, err := runRoot(t, "move", "-b", "OO_XX____", "--mark", "x")
		require.NoError(t, err)

		assert.Contains(t, out, "X plays cell 5 (score -10)")
	})

	t.Run("Invalid board", func(t *testing.T) {
		_, err := runRoot(t, "move", "--board", "OOO")

		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Full board", func(t *testing.T) {
		_, err := runRoot(t, "move", "--board", "OXOOXXXOX", "--mark", "O")

		require.ErrorIs(t, err, apperror.ErrNoAvailableMove)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := runRoot(t, "move", "--board", "_________", "--mark", "X", "--format", "xml")

		require.Error(t, err)
	})
}

func TestSelfPlayCmd(t *testing.T) {
	out, err := runRoot(t, "selfplay")
	require.NoError(t, err)

	assert.Contains(t, out, "X -> 0")
	assert.Contains(t, out, entity.DrawMessage)
}

func TestInitLogger(t *testing.T) {
	t.Run("Writes to the configured file", func(t *testing.T) {
		// Given: a log file in a temp dir
		path := filepath.Join(t.TempDir(), "game.log")
		conf := &config.Config{LogLevel: "debug", LogFile: path}

		// When: logging through the logger
		logger, closeLog, err := initLogger(conf)
		require.NoError(t, err)
		logger.Debug("hello", "cell", 4)
		require.NoError(t, closeLog())

		// Then: the JSON line is in the file
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"hello"`)
		assert.Contains(t, string(content), `"cell":4`)
	})

	t.Run("Empty path discards", func(t *testing.T) {
		logger, closeLog, err := initLogger(&config.Config{})
		require.NoError(t, err)
		assert.NotNil(t, logger)
		assert.NoError(t, closeLog())
	})
}
