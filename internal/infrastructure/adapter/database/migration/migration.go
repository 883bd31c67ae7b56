package migration

import (
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Migrator provisions the relational schema: users, transactions,
// withdrawals and the session table
type Migrator struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(db *gorm.DB, logger coreport.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// MigrateAll auto-migrates every model. Safe to run on every startup.
func (m *Migrator) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Transaction{},
		&model.Withdrawal{},
		&model.Session{},
	); err != nil {
		m.logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
