package persistence

import (
	"context"
	"time"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
)

// SessionStore persists sessions keyed by their opaque token. Implementations
// provision their own storage (table or keyspace) on startup.
type SessionStore interface {
	// Create persists a new session record
	Create(ctx context.Context, session *entity.Session) error

	// Get retrieves a session by token. Expired sessions are treated as
	// absent.
	//
	// Possible errors:
	// - ErrSessionNotFound: if the token is unknown or expired
	Get(ctx context.Context, token string) (*entity.Session, error)

	// Touch extends the session's expiry, implementing the sliding window
	// refreshed on authenticated activity
	Touch(ctx context.Context, token string, expiresAt time.Time) error

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all sessions past their expiry (housekeeping)
	DeleteExpired(ctx context.Context, now time.Time) error
}
