package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/domain/port/persistence"
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

// memStore is the shared in-memory state behind the fake repositories
type memStore struct {
	mu          sync.Mutex
	nextUserID  uint64
	nextTxID    uint64
	nextWID     uint64
	users       map[uint64]entity.User
	txs         []entity.Transaction
	withdrawals []entity.Withdrawal

	failAppend bool
}

func newMemStore() *memStore {
	return &memStore{users: make(map[uint64]entity.User)}
}

func (s *memStore) addUser(balanceInCents int64, clock coreport.TimeProvider) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	user, _ := entity.NewUser("Alice", "alice@example.com", "+241 01 02 03 04", "hash", "", clock)
	user.ID = s.nextUserID
	user.SetBalance(balanceInCents)
	s.users[user.ID] = *user
	return user.ID
}

// snapshot and restore implement transactional semantics for the fake unit
// of work
func (s *memStore) snapshot() *memStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make(map[uint64]entity.User, len(s.users))
	for id, u := range s.users {
		users[id] = u
	}
	return &memStore{
		nextUserID:  s.nextUserID,
		nextTxID:    s.nextTxID,
		nextWID:     s.nextWID,
		users:       users,
		txs:         append([]entity.Transaction(nil), s.txs...),
		withdrawals: append([]entity.Withdrawal(nil), s.withdrawals...),
		failAppend:  s.failAppend,
	}
}

func (s *memStore) restore(snap *memStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID = snap.nextUserID
	s.nextTxID = snap.nextTxID
	s.nextWID = snap.nextWID
	s.users = snap.users
	s.txs = snap.txs
	s.withdrawals = snap.withdrawals
}

// memUserRepo implements persistence.UserRepository over memStore
type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return &user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return errs.ErrEmailTaken
		}
	}
	r.store.nextUserID++
	user.ID = r.store.nextUserID
	r.store.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) SetActivated(ctx context.Context, id uint64) (*entity.User, error) {
	r.store.mu.Lock()
	user, ok := r.store.users[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, errs.ErrUserNotFound
	}
	user.IsActivated = true
	r.store.users[id] = user
	r.store.mu.Unlock()
	return r.GetByID(ctx, id)
}

func (r *memUserRepo) AdjustBalance(ctx context.Context, id uint64, deltaInCents int64) (*entity.User, error) {
	r.store.mu.Lock()
	user, ok := r.store.users[id]
	if !ok {
		r.store.mu.Unlock()
		return nil, errs.ErrUserNotFound
	}
	next := user.Balance() + deltaInCents
	if next < 0 {
		balance := user.Balance()
		r.store.mu.Unlock()
		return nil, errs.NewInsufficientFundsError(id, -deltaInCents, balance)
	}
	user.SetBalance(next)
	r.store.users[id] = user
	r.store.mu.Unlock()
	return r.GetByID(ctx, id)
}

// memLedgerRepo implements persistence.LedgerRepository over memStore
type memLedgerRepo struct {
	store *memStore
}

func (r *memLedgerRepo) AppendTransaction(_ context.Context, transaction *entity.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failAppend {
		return errors.New("ledger append failed")
	}
	r.store.nextTxID++
	transaction.ID = r.store.nextTxID
	r.store.txs = append(r.store.txs, *transaction)
	return nil
}

func (r *memLedgerRepo) ListTransactions(_ context.Context, userID uint64) ([]entity.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Transaction
	for i := len(r.store.txs) - 1; i >= 0; i-- {
		if r.store.txs[i].UserID == userID {
			out = append(out, r.store.txs[i])
		}
	}
	return out, nil
}

func (r *memLedgerRepo) CreateWithdrawal(_ context.Context, withdrawal *entity.Withdrawal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextWID++
	withdrawal.ID = r.store.nextWID
	r.store.withdrawals = append(r.store.withdrawals, *withdrawal)
	return nil
}

func (r *memLedgerRepo) ListWithdrawals(_ context.Context, userID uint64) ([]entity.Withdrawal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Withdrawal
	for i := len(r.store.withdrawals) - 1; i >= 0; i-- {
		if r.store.withdrawals[i].UserID == userID {
			out = append(out, r.store.withdrawals[i])
		}
	}
	return out, nil
}

// fakeUnitOfWork snapshots the store on Begin and restores it on Rollback
type fakeUnitOfWork struct {
	store *memStore

	mu       sync.Mutex
	snap     *memStore
	commits  int
	rollback int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snap = u.store.snapshot()
	return ctx, nil
}

func (u *fakeUnitOfWork) Commit(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snap = nil
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.snap != nil {
		u.store.restore(u.snap)
		u.snap = nil
	}
	u.rollback++
	return nil
}

func (u *fakeUnitOfWork) GetUserRepository(_ context.Context) persistence.UserRepository {
	return &memUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) GetLedgerRepository(_ context.Context) persistence.LedgerRepository {
	return &memLedgerRepo{store: u.store}
}
