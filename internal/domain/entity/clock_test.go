package entity

import (
	"context"
	"time"
)

// fixedClock is a test time provider frozen at a known instant
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func (c fixedClock) Since(t time.Time) time.Duration {
	return c.now.Sub(t)
}

func (c fixedClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
