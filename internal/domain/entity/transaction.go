package entity

import (
	"fmt"
	"time"

	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
)

// TransactionType represents the kind of balance-affecting event
type TransactionType string

// Transaction types
const (
	TypeEarn     TransactionType = "earn"
	TypeWithdraw TransactionType = "withdraw"
	TypeBonus    TransactionType = "bonus"
)

// Transaction is an immutable ledger entry recording a balance mutation.
// The amount is signed: positive for credits, negative for debits.
type Transaction struct {
	ID            uint64          // Unique identifier for the ledger entry
	UserID        uint64          // ID of the user this entry belongs to
	Type          TransactionType // earn, withdraw or bonus
	AmountInCents int64           // Signed amount in cents
	Description   string          // Free-text description of the event
	CreatedAt     time.Time       // When the entry was created
}

// NewTransaction creates a new ledger entry with basic validation
func NewTransaction(
	userID uint64,
	txType TransactionType,
	amountInCents int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !isValidTransactionType(txType) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, txType)
	}

	return &Transaction{
		UserID:        userID,
		Type:          txType,
		AmountInCents: amountInCents,
		Description:   description,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// FormattedAmount returns the signed amount as a decimal string with 2 decimal places
func (t *Transaction) FormattedAmount() string {
	return FormatCents(t.AmountInCents)
}

// IsCredit returns true if this entry increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.AmountInCents > 0
}

// IsDebit returns true if this entry decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return t.AmountInCents < 0
}

// isValidTransactionType validates if the transaction type is allowed
func isValidTransactionType(txType TransactionType) bool {
	return txType == TypeEarn || txType == TypeWithdraw || txType == TypeBonus
}
