package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the ledger store (transaction history and
// withdrawal queue) over GORM
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		logger: logger,
	}
}

// AppendTransaction saves a new ledger entry. Pure insert; entries are never
// touched again.
func (r *LedgerRepository) AppendTransaction(ctx context.Context, transaction *entity.Transaction) error {
	m := model.Transaction{
		UserID:      transaction.UserID,
		Type:        string(transaction.Type),
		Amount:      transaction.AmountInCents,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Error("Failed to append ledger entry", map[string]any{
			"user_id": transaction.UserID,
			"type":    string(transaction.Type),
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transaction.ID = m.ID
	return nil
}

// ListTransactions returns all ledger entries for a user, newest first.
// The id tiebreak keeps the order stable for entries created in the same
// instant.
func (r *LedgerRepository) ListTransactions(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, entity.Transaction{
			ID:            row.ID,
			UserID:        row.UserID,
			Type:          entity.TransactionType(row.Type),
			AmountInCents: row.Amount,
			Description:   row.Description,
			CreatedAt:     row.CreatedAt,
		})
	}
	return transactions, nil
}

// CreateWithdrawal saves a new payout request
func (r *LedgerRepository) CreateWithdrawal(ctx context.Context, withdrawal *entity.Withdrawal) error {
	m := model.Withdrawal{
		UserID:      withdrawal.UserID,
		Amount:      withdrawal.AmountInCents,
		Method:      withdrawal.Method,
		PhoneNumber: withdrawal.PhoneNumber,
		Status:      string(withdrawal.Status),
		CreatedAt:   withdrawal.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Error("Failed to create withdrawal", map[string]any{
			"user_id": withdrawal.UserID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	withdrawal.ID = m.ID
	return nil
}

// ListWithdrawals returns all payout requests for a user, newest first
func (r *LedgerRepository) ListWithdrawals(ctx context.Context, userID uint64) ([]entity.Withdrawal, error) {
	var rows []model.Withdrawal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	withdrawals := make([]entity.Withdrawal, 0, len(rows))
	for _, row := range rows {
		withdrawals = append(withdrawals, entity.Withdrawal{
			ID:            row.ID,
			UserID:        row.UserID,
			AmountInCents: row.Amount,
			Method:        row.Method,
			PhoneNumber:   row.PhoneNumber,
			Status:        entity.WithdrawalStatus(row.Status),
			CreatedAt:     row.CreatedAt,
		})
	}
	return withdrawals, nil
}
