package persistence

import (
	"context"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
)

// LedgerRepository persists the append-only transaction history and the
// withdrawal request queue
type LedgerRepository interface {
	// AppendTransaction saves a new ledger entry and assigns its ID.
	// Entries are never updated or deleted afterwards.
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	AppendTransaction(ctx context.Context, transaction *entity.Transaction) error

	// ListTransactions returns all ledger entries for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ListTransactions(ctx context.Context, userID uint64) ([]entity.Transaction, error)

	// CreateWithdrawal saves a new payout request with status pending
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	CreateWithdrawal(ctx context.Context, withdrawal *entity.Withdrawal) error

	// ListWithdrawals returns all payout requests for a user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: if the database is unreachable
	ListWithdrawals(ctx context.Context, userID uint64) ([]entity.Withdrawal, error)
}
