package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/model"
)

// UserRepository implements the credential store over GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func modelToEntity(m *model.User) *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		ReferralCode: m.ReferralCode,
		IsActivated:  m.IsActivated,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
	}
	user.SetBalance(m.Balance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrEmailTaken
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by id", err)
	}
	return modelToEntity(&m), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting user by email", err)
	}
	return modelToEntity(&m), nil
}

// Create persists a new user and assigns its ID. The unique index on email
// is the sole authority on duplicates; there is no check-then-insert race.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.User{
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		ReferralCode: user.ReferralCode,
		Balance:      user.Balance(),
		IsActivated:  user.IsActivated,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating user", err)
	}

	user.ID = m.ID

	r.logger.Info("User created", map[string]any{
		"user_id": m.ID,
		"email":   m.Email,
	})
	return nil
}

// SetActivated flips the activation flag and returns the updated user
func (r *UserRepository) SetActivated(ctx context.Context, id uint64) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_activated", true)

	if result.Error != nil {
		return nil, r.handleDatabaseError("activating user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// AdjustBalance applies a signed delta to the stored balance as a single
// guarded UPDATE. The guard (balance + delta >= 0) makes concurrent
// double-submissions safe without explicit row locks: the statement is
// atomic at the storage layer, so a lost update or negative balance cannot
// occur regardless of isolation level.
func (r *UserRepository) AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance + ? >= 0", id, deltaInCents).
		Update("balance", gorm.Expr("balance + ?", deltaInCents))

	if result.Error != nil {
		return nil, r.handleDatabaseError("adjusting balance", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the user is missing or the guard rejected the debit;
		// re-read to tell the two apart.
		var m model.User
		if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
			return nil, r.handleDatabaseError("adjusting balance", err)
		}

		r.logger.Warn("Balance adjustment rejected", map[string]any{
			"user_id": id,
			"delta":   entity.FormatCents(deltaInCents),
			"balance": entity.FormatCents(m.Balance),
		})
		return nil, errs.NewInsufficientFundsError(id, -deltaInCents, m.Balance)
	}

	return r.GetByID(ctx, id)
}
