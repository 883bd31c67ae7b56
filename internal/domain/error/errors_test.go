package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "email is required")

	t.Run("Error message names the field", func(t *testing.T) {
		assert.Equal(t, "email: email is required", err.Error())
	})

	t.Run("Matches ErrValidation", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", err)
		assert.ErrorIs(t, wrapped, ErrValidation)

		var validationErr *ValidationError
		assert.True(t, errors.As(wrapped, &validationErr))
		assert.Equal(t, "email", validationErr.Field)
	})

	t.Run("LogFields carries the field name", func(t *testing.T) {
		var validationErr *ValidationError
		errors.As(err, &validationErr)
		fields := validationErr.LogFields()
		assert.Equal(t, "validation_error", fields["error_type"])
		assert.Equal(t, "email", fields["field"])
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, 10000, 180)

	t.Run("Matches ErrInsufficientFunds", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("Error message carries amounts", func(t *testing.T) {
		assert.Contains(t, err.Error(), "user 7")
		assert.Contains(t, err.Error(), "10000")
		assert.Contains(t, err.Error(), "180")
	})

	t.Run("LogFields carries amounts", func(t *testing.T) {
		var fundsErr *InsufficientFundsError
		errors.As(err, &fundsErr)
		fields := fundsErr.LogFields()
		assert.Equal(t, uint64(7), fields["user_id"])
		assert.Equal(t, int64(10000), fields["requested_cents"])
		assert.Equal(t, int64(180), fields["balance_cents"])
	})
}

func TestErrorPredicates(t *testing.T) {
	t.Run("IsValidationError", func(t *testing.T) {
		assert.True(t, IsValidationError(NewValidationError("name", "name is required")))
		assert.True(t, IsValidationError(ErrInvalidAmount))
		assert.True(t, IsValidationError(ErrNegativeAmount))
		assert.False(t, IsValidationError(ErrUserNotFound))
	})

	t.Run("IsInsufficientFundsError", func(t *testing.T) {
		assert.True(t, IsInsufficientFundsError(ErrInsufficientFunds))
		assert.True(t, IsInsufficientFundsError(NewInsufficientFundsError(1, 100, 0)))
		assert.False(t, IsInsufficientFundsError(ErrInvalidAmount))
	})

	t.Run("IsAuthenticationError", func(t *testing.T) {
		assert.True(t, IsAuthenticationError(ErrInvalidCredentials))
		assert.True(t, IsAuthenticationError(ErrUnauthenticated))
		assert.True(t, IsAuthenticationError(ErrSessionNotFound))
		assert.False(t, IsAuthenticationError(ErrUserNotFound))
	})

	t.Run("IsNotFoundError", func(t *testing.T) {
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.False(t, IsNotFoundError(ErrSessionNotFound))
	})

	t.Run("IsConflictError", func(t *testing.T) {
		assert.True(t, IsConflictError(ErrEmailTaken))
		assert.False(t, IsConflictError(ErrUserNotFound))
	})
}
