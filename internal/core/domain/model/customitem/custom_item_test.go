package customitem_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewCustomItem(t *testing.T) {
	t.Run("should create custom item with incoming status", func(t *testing.T) {
		guestID := kernel.NewUUID()

		ci, err := customitem.NewCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&guestID, "extra satay sticks", 3, mustMoney(t, 450), "less spicy",
		)

		require.NoError(t, err)
		assert.Equal(t, item.Incoming, ci.Status())
		assert.Equal(t, "extra satay sticks", ci.Name())
		assert.Equal(t, 3, ci.Quantity())
		assert.Equal(t, int64(450), ci.Price().Cents())
		assert.Equal(t, "less spicy", ci.Remarks())
		require.NotNil(t, ci.GuestID())
		assert.True(t, ci.GuestID().IsEqual(guestID))
		assert.False(t, ci.CreatedAt().IsZero())
		require.NoError(t, ci.Validate())
	})

	t.Run("guest reference is optional", func(t *testing.T) {
		ci, err := customitem.NewCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "teh tarik", 1, mustMoney(t, 180), "",
		)

		require.NoError(t, err)
		assert.Nil(t, ci.GuestID())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := customitem.NewCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "", 1, mustMoney(t, 100), "",
		)

		require.Error(t, err)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := customitem.NewCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "kopi", 0, mustMoney(t, 100), "",
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid stall reference", func(t *testing.T) {
		_, err := customitem.NewCustomItem(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			nil, "kopi", 1, mustMoney(t, 100), "",
		)

		require.Error(t, err)
	})
}

func TestRestoreCustomItem(t *testing.T) {
	t.Run("should restore with explicit status and timestamp", func(t *testing.T) {
		createdAt := time.Now().Add(-time.Hour).UTC()

		ci, err := customitem.RestoreCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "mee goreng", item.Preparing, 1, mustMoney(t, 550), createdAt, "",
		)

		require.NoError(t, err)
		assert.Equal(t, item.Preparing, ci.Status())
		assert.Equal(t, createdAt, ci.CreatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := customitem.RestoreCustomItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, "mee goreng", item.Unknown, 1, mustMoney(t, 550), time.Now(), "",
		)

		require.Error(t, err)
	})
}

func TestCustomItem_ChangeStatus(t *testing.T) {
	ci, err := customitem.NewCustomItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, "kopi", 1, mustMoney(t, 180), "",
	)
	require.NoError(t, err)

	next, err := ci.Status().Advance()
	require.NoError(t, err)
	require.NoError(t, ci.ChangeStatus(next))

	assert.Equal(t, item.Preparing, ci.Status())
}

func TestCustomItem_Validate(t *testing.T) {
	var ci customitem.CustomItem

	require.ErrorIs(t, ci.Validate(), customitem.ErrCustomItemIsNotConstructed)
}
