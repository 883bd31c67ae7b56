package persistence

import (
	"context"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
)

// UserRepository defines the narrow key-based accessor over the User entity.
// Balance mutation goes through AdjustBalance only; everything else is plain
// persistence with no business logic.
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by their unique email
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given email exists
	// - ErrDatabaseConnection: if the database is unreachable
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID. Duplicate emails are
	// detected by the store's unique constraint, not a pre-check, so two
	// racing registrations cannot both succeed.
	//
	// Possible errors:
	// - ErrEmailTaken: if a user with the same email already exists
	// - ErrDatabaseConnection: if the database is unreachable
	Create(ctx context.Context, user *entity.User) error

	// SetActivated flips the activation flag to true and returns the updated
	// user. Calling it on an already-activated user is a no-op.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrDatabaseConnection: if the database is unreachable
	SetActivated(ctx context.Context, id uint64) (*entity.User, error)

	// AdjustBalance applies a signed delta (in cents) to the user's balance
	// as a single guarded UPDATE, so concurrent adjustments cannot lose
	// updates or drive the balance negative. Returns the updated user.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrInsufficientFunds: if the delta would make the balance negative
	// - ErrDatabaseConnection: if the database is unreachable
	AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error)
}
