package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/model"
)

// GormStore is the default durable session store, backed by the sessions
// table auto-provisioned alongside the rest of the schema
type GormStore struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGormStore creates a database-backed session store
func NewGormStore(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GormStore {
	return &GormStore{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create persists a new session record
func (s *GormStore) Create(ctx context.Context, session *entity.Session) error {
	m := model.Session{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Get retrieves a session by token; expired sessions are reported as absent
func (s *GormStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	var m model.Session
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	session := &entity.Session{
		Token:     m.Token,
		UserID:    m.UserID,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	if session.Expired(s.timeProvider.Now()) {
		_ = s.Delete(ctx, token)
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

// Touch extends the session's expiry
func (s *GormStore) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	err := s.db.WithContext(ctx).Model(&model.Session{}).
		Where("token = ?", token).
		Update("expires_at", expiresAt).Error
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Delete removes a session; deleting an unknown token is not an error
func (s *GormStore) Delete(ctx context.Context, token string) error {
	err := s.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// DeleteExpired removes all sessions past their expiry
func (s *GormStore) DeleteExpired(ctx context.Context, now time.Time) error {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected > 0 {
		s.logger.Debug("Expired sessions removed", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return nil
}
