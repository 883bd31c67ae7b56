package repository

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

// testClock is a movable time provider for deterministic tests
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

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Withdrawal{},
		&model.Session{},
	))

	return db
}

// createTestUser persists a user with the given balance and returns it
func createTestUser(t *testing.T, repo *UserRepository, clock coreport.TimeProvider, email string, balanceInCents int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser("Alice", email, "+241 01 02 03 04", "hash", "", clock)
	require.NoError(t, err)
	user.SetBalance(balanceInCents)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}
