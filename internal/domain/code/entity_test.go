//go:build unit

package code_test

import (
	"strings"
	"testing"
	"time"

	"codevend/internal/domain/code"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	t.Run("creates an available code", func(t *testing.T) {
		c, err := code.NewCode("game-keys", "KEY-001")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, "game-keys", c.ProductID())
		assert.Equal(t, "KEY-001", c.Value())
		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.AssignedTo())
		assert.Nil(t, c.AssignedAt())
	})

	t.Run("value is trimmed", func(t *testing.T) {
		c, err := code.NewCode("game-keys", "  KEY-001  ")
		require.NoError(t, err)
		assert.Equal(t, "KEY-001", c.Value())
	})

	t.Run("empty value rejected", func(t *testing.T) {
		_, err := code.NewCode("game-keys", "   ")
		assert.ErrorIs(t, err, code.ErrEmptyCodeValue)
	})

	t.Run("overlong value rejected", func(t *testing.T) {
		_, err := code.NewCode("game-keys", strings.Repeat("x", 513))
		assert.ErrorIs(t, err, code.ErrCodeValueTooLong)
	})

	t.Run("value at limit ok", func(t *testing.T) {
		_, err := code.NewCode("game-keys", strings.Repeat("x", 512))
		assert.NoError(t, err)
	})
}

func TestAssign(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("flips to assigned with assignee and timestamp", func(t *testing.T) {
		c, err := code.NewCode("game-keys", "KEY-001")
		require.NoError(t, err)

		require.NoError(t, c.Assign("alice", at))

		assert.Equal(t, code.StatusAssigned, c.Status())
		require.NotNil(t, c.AssignedTo())
		assert.Equal(t, "alice", *c.AssignedTo())
		require.NotNil(t, c.AssignedAt())
		assert.Equal(t, at, *c.AssignedAt())
	})

	t.Run("second assignment rejected", func(t *testing.T) {
		c, err := code.NewCode("game-keys", "KEY-001")
		require.NoError(t, err)

		require.NoError(t, c.Assign("alice", at))
		err = c.Assign("bob", at.Add(time.Minute))
		assert.ErrorIs(t, err, code.ErrAlreadyAssigned)

		assert.Equal(t, "alice", *c.AssignedTo())
	})
}
