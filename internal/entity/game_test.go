package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

func TestNewSession(t *testing.T) {
	// When: a new session is created
	session := NewSession("123", ModeComputer, PlayerO)

	// Then: the session state should correspond to the expected initial state
	expected := &Session{
		ID:           "123",
		Board:        Board{},
		Turn:         PlayerX,
		Active:       true,
		Mode:         ModeComputer,
		ComputerMark: PlayerO,
		Outcome:      Outcome{State: StateInProgress},
		Message:      "It's X's turn",
	}

	require.Equal(t, expected, session)
}

func TestSession_IsComputersTurn(t *testing.T) {
	t.Run("Computer mode on the computer's mark", func(t *testing.T) {
		session := NewSession("123", ModeComputer, PlayerX)

		assert.True(t, session.IsComputersTurn())
	})

	t.Run("Human mode never hands over", func(t *testing.T) {
		session := NewSession("123", ModeHuman, PlayerX)

		assert.False(t, session.IsComputersTurn())
	})

	t.Run("Finished round", func(t *testing.T) {
		session := NewSession("123", ModeComputer, PlayerX)
		session.Active = false

		assert.False(t, session.IsComputersTurn())
	})
}

func TestScore_Record(t *testing.T) {
	// Given: an empty tally
	var score Score

	// When: recording two X wins, one O win and an empty mark
	score.Record(PlayerX)
	score.Record(PlayerO)
	score.Record(PlayerX)
	score.Record(EmptyCell)

	// Then: only real marks are counted
	assert.Equal(t, Score{X: 2, O: 1}, score)
}

func TestParseMode(t *testing.T) {
	for input, expected := range map[string]Mode{
		"human":     ModeHuman,
		"computer":  ModeComputer,
		"vs-player": ModeHuman,
		"vs-ai":     ModeComputer,
	} {
		mode, err := ParseMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, mode, input)
	}

	_, err := ParseMode("online")
	assert.ErrorIs(t, err, apperror.ErrUnknownMode)
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("x")
	require.NoError(t, err)
	assert.Equal(t, PlayerX, mark)

	mark, err = ParseMark(" O ")
	require.NoError(t, err)
	assert.Equal(t, PlayerO, mark)

	_, err = ParseMark("")
	assert.ErrorIs(t, err, apperror.ErrInvalidMove)
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a board string using every empty symbol
		board, err := ParseBoard("oo_xx.- -")
		require.NoError(t, err)

		// Then: cells are parsed and rendered back canonically
		assert.Equal(t, Board{PlayerO, PlayerO, EmptyCell, PlayerX, PlayerX}, board)
		assert.Equal(t, "OO_XX____", board.String())
	})

	t.Run("Wrong length", func(t *testing.T) {
		_, err := ParseBoard("XO")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("XO?______")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("O ahead of X", func(t *testing.T) {
		_, err := ParseBoard("OO_X_____")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.True(t, PlayerX.IsPlayer())
	assert.False(t, EmptyCell.IsPlayer())
}
