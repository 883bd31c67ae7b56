package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/model"
)

// testClock is a movable time provider for deterministic expiry tests
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }

func (c *testClock) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// quietLogger drops all output
type quietLogger struct{}

func (quietLogger) SetLevel(coreport.LogLevel)   {}
func (quietLogger) Debug(string, map[string]any) {}
func (quietLogger) Info(string, map[string]any)  {}
func (quietLogger) Warn(string, map[string]any)  {}
func (quietLogger) Error(string, map[string]any) {}
func (quietLogger) Flush() error                 { return nil }

// openSessionDB opens an in-memory database with the sessions table
func openSessionDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Session{}))
	return db
}

// newSession builds a session expiring one hour after the clock's now
func newSession(token string, userID uint64, clock *testClock) *entity.Session {
	return &entity.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: clock.now.Add(time.Hour),
		CreatedAt: clock.now,
	}
}
