package auth

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/domain/port/persistence"
)

// MinPasswordLength is the minimum accepted password length at registration
const MinPasswordLength = 6

// Service implements the authentication gate: registration, login, logout
// and session resolution for the request guard
type Service struct {
	users        persistence.UserRepository
	sessions     persistence.SessionStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	sessionTTL   time.Duration
}

// NewService creates a new authentication service. The session store is
// injected here, together with the repositories, so no component is patched
// with collaborators after construction.
func NewService(
	users persistence.UserRepository,
	sessions persistence.SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		users:        users,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
		sessionTTL:   sessionTTL,
	}
}

// SessionTTL returns the configured session lifetime
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

// RegisterInput carries the registration form fields
type RegisterInput struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	ReferralCode string
}

// validate checks the input shape and reports the first offending field
func (in RegisterInput) validate() error {
	if in.Name == "" {
		return errs.NewValidationError("name", "name is required")
	}
	if in.Email == "" {
		return errs.NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return errs.NewValidationError("email", "invalid email address")
	}
	if in.Phone == "" {
		return errs.NewValidationError("phone", "phone is required")
	}
	if len(in.Password) < MinPasswordLength {
		return errs.NewValidationError("password", "password must be at least 6 characters")
	}
	return nil
}

// Register creates a new user with a zero balance and starts an
// authenticated session for it. Duplicate emails surface as ErrEmailTaken
// from the store's unique constraint.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, *entity.Session, error) {
	if err := in.validate(); err != nil {
		return nil, nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(in.Name, in.Email, in.Phone, hash, in.ReferralCode, s.timeProvider)
	if err != nil {
		return nil, nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrEmailTaken) {
			s.logger.Warn("Registration with existing email", map[string]any{
				"email": in.Email,
			})
		}
		return nil, nil, err
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return user, session, nil
}

// Login authenticates by email and password and starts a session. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, *entity.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, nil, errs.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("Failed to verify password", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, nil, errs.ErrInternalServer
	}
	if !ok {
		s.logger.Warn("Login with wrong password", map[string]any{
			"user_id": user.ID,
		})
		return nil, nil, errs.ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return user, session, nil
}

// Logout tears down the session. It succeeds even when no session exists.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a session token to its user, refreshing the sliding
// expiry on the way. It is the backing call of the request guard.
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, *entity.Session, error) {
	if token == "" {
		return nil, nil, errs.ErrUnauthenticated
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrSessionNotFound) {
			return nil, nil, errs.ErrUnauthenticated
		}
		return nil, nil, err
	}

	now := s.timeProvider.Now()
	if session.Expired(now) {
		_ = s.sessions.Delete(ctx, token)
		return nil, nil, errs.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Stale session pointing at a vanished user
			_ = s.sessions.Delete(ctx, token)
			return nil, nil, errs.ErrUnauthenticated
		}
		return nil, nil, err
	}

	session.ExpiresAt = now.Add(s.sessionTTL)
	if err := s.sessions.Touch(ctx, token, session.ExpiresAt); err != nil {
		s.logger.Warn("Failed to refresh session expiry", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	return user, session, nil
}

// startSession creates a fresh session with an opaque token
func (s *Service) startSession(ctx context.Context, userID uint64) (*entity.Session, error) {
	now := s.timeProvider.Now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("Failed to create session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return session, nil
}
