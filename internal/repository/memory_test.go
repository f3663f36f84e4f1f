package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored copy is detached from the caller", func(t *testing.T) {
		// Given: a stored session
		sessionRepo := NewMemorySessionRepository()
		session := entity.NewSession("123", entity.ModeHuman, entity.PlayerO)
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: the caller keeps mutating its pointer
		session.Board[0] = entity.PlayerX

		// Then: the stored session is unchanged until saved again
		stored, err := sessionRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, stored.Board[0])
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		sessionRepo := NewMemorySessionRepository()

		_, err := sessionRepo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID", func(t *testing.T) {
		// Given: a stored session
		sessionRepo := NewMemorySessionRepository()
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, entity.NewSession("123", entity.ModeHuman, entity.PlayerO)))

		// When: deleting it twice
		firstErr := sessionRepo.DeleteByID(ctx, "123")
		secondErr := sessionRepo.DeleteByID(ctx, "123")

		// Then: only the second call fails
		require.NoError(t, firstErr)
		require.ErrorIs(t, secondErr, apperror.ErrSessionNotFound)
	})
}
