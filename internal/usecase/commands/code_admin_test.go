//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"codevend/internal/pkg/clock"
	"codevend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodeAdminCommands(store *fakeStore) commands.CodeAdminCommands {
	mockClock := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewCodeAdminCommands(store, mockClock)
}

func TestAdminAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an available code regardless of the cap", func(t *testing.T) {
		store := newFakeStore()
		store.addProduct("game-keys", 1, true)
		store.addCodes("game-keys", "KEY-001", "KEY-002")

		// The user already holds a code.
		delivery := newDeliveryCommands(store)
		_, err := delivery.Deliver(ctx, "game-keys", "alice")
		require.NoError(t, err)

		target := store.codes[1]
		uc := newCodeAdminCommands(store)

		result, err := uc.Assign(ctx, target.id, "alice")
		require.NoError(t, err)
		assert.Equal(t, target.value, result.Code)

		held, err := store.ListCodes(ctx, "game-keys", "alice")
		require.NoError(t, err)
		assert.Len(t, held, 2)
	})

	t.Run("rejects an already assigned code", func(t *testing.T) {
		store := newFakeStore()
		store.addProduct("game-keys", 1, true)
		store.addCodes("game-keys", "KEY-001")
		store.codes[0].assigned = true

		uc := newCodeAdminCommands(store)

		_, err := uc.Assign(ctx, store.codes[0].id, "alice")
		assert.ErrorIs(t, err, commands.ErrCodeAlreadyAssigned)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := newFakeStore()
		uc := newCodeAdminCommands(store)

		_, err := uc.Assign(ctx, uuid.New(), "alice")
		assert.ErrorIs(t, err, commands.ErrCodeNotFound)
	})
}

func TestAdminDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes a code from the pool", func(t *testing.T) {
		store := newFakeStore()
		store.addProduct("game-keys", 1, true)
		store.addCodes("game-keys", "KEY-001")

		uc := newCodeAdminCommands(store)

		err := uc.Delete(ctx, store.codes[0].id)
		require.NoError(t, err)

		_, err = store.PickAvailable(ctx, "game-keys")
		assert.Error(t, err)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := newFakeStore()
		uc := newCodeAdminCommands(store)

		err := uc.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrCodeNotFound)
	})
}
