package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
)

func TestNewUser(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	t.Run("Successful creation", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "+241 01 02 03 04", "hash", "REF42", clock)

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, int64(0), user.Balance())
		assert.Equal(t, "0.00", user.FormattedBalance())
		assert.False(t, user.IsActivated)
		assert.False(t, user.IsAdmin)
		assert.Equal(t, clock.now, user.CreatedAt)
	})

	t.Run("Missing email", func(t *testing.T) {
		user, err := NewUser("Alice", "", "+241 01 02 03 04", "hash", "", clock)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Missing password hash", func(t *testing.T) {
		user, err := NewUser("Alice", "alice@example.com", "+241 01 02 03 04", "", "", clock)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestUserFormattedBalance(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	user, err := NewUser("Alice", "alice@example.com", "+241 01 02 03 04", "hash", "", clock)
	require.NoError(t, err)

	user.SetBalance(50000)
	assert.Equal(t, "500.00", user.FormattedBalance())
}
