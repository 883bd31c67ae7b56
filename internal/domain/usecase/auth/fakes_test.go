package auth

import (
	"context"
	"sync"
	"time"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
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

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// quietLogger drops all output
type quietLogger struct{}

func (quietLogger) SetLevel(coreport.LogLevel)   {}
func (quietLogger) Debug(string, map[string]any) {}
func (quietLogger) Info(string, map[string]any)  {}
func (quietLogger) Warn(string, map[string]any)  {}
func (quietLogger) Error(string, map[string]any) {}
func (quietLogger) Flush() error                 { return nil }

// memUserRepo is an in-memory user repository enforcing the unique email
// constraint the way the real store does
type memUserRepo struct {
	mu      sync.Mutex
	nextID  uint64
	byID    map[uint64]*entity.User
	byEmail map[string]uint64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[uint64]*entity.User),
		byEmail: make(map[string]uint64),
	}
}

func (r *memUserRepo) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *r.byID[id]
	return &copied, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return errs.ErrEmailTaken
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memUserRepo) SetActivated(ctx context.Context, id uint64) (*entity.User, error) {
	r.mu.Lock()
	user, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return nil, errs.ErrUserNotFound
	}
	user.IsActivated = true
	r.mu.Unlock()
	return r.GetByID(ctx, id)
}

func (r *memUserRepo) AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error) {
	r.mu.Lock()
	user, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return nil, errs.ErrUserNotFound
	}
	next := user.Balance() + deltaInCents
	if next < 0 {
		balance := user.Balance()
		r.mu.Unlock()
		return nil, errs.NewInsufficientFundsError(id, -deltaInCents, balance)
	}
	user.SetBalance(next)
	r.mu.Unlock()
	return r.GetByID(ctx, id)
}

// memSessionStore is an in-memory session store
type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*entity.Session)}
}

func (s *memSessionStore) Create(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.Token] = &copied
	return nil
}

func (s *memSessionStore) Get(_ context.Context, token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *memSessionStore) Touch(_ context.Context, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return errs.ErrSessionNotFound
	}
	session.ExpiresAt = expiresAt
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memSessionStore) DeleteExpired(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, token)
		}
	}
	return nil
}
