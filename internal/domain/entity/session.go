package entity

import (
	"time"
)

// Session binds an opaque client-held token to an authenticated user identity
type Session struct {
	Token     string    // Opaque high-entropy token carried in the session cookie
	UserID    uint64    // Authenticated principal
	ExpiresAt time.Time // Sliding expiry, refreshed on authenticated activity
	CreatedAt time.Time // When the session was started
}

// Expired reports whether the session is past its expiry at the given instant
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
