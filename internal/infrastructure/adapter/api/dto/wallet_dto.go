package dto

import (
	"time"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
)

// EarnRequest represents the API request for collecting an ad-task reward.
// The amount is advisory: known task IDs are paid from the server-side
// reward table regardless of what the client reports.
type EarnRequest struct {
	Amount Money  `json:"amount"`
	TaskID string `json:"taskId" binding:"required"`
}

// EarnResponse represents the API response for a collected reward
type EarnResponse struct {
	Balance string `json:"balance"`
	Message string `json:"message"`
}

// WithdrawRequest represents the API request for a payout
type WithdrawRequest struct {
	Amount      Money  `json:"amount" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Method      string `json:"method" binding:"required"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionResponse maps a ledger entry to its API shape
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.FormattedAmount(),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}

// NewTransactionListResponse maps a list of ledger entries
func NewTransactionListResponse(txs []entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}

// WithdrawalResponse represents a payout request in API responses
type WithdrawalResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Amount      string    `json:"amount"`
	Method      string    `json:"method"`
	PhoneNumber string    `json:"phoneNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewWithdrawalResponse maps a payout request to its API shape
func NewWithdrawalResponse(w *entity.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Amount:      w.FormattedAmount(),
		Method:      w.Method,
		PhoneNumber: w.PhoneNumber,
		Status:      string(w.Status),
		CreatedAt:   w.CreatedAt,
	}
}

// NewWithdrawalListResponse maps a list of payout requests
func NewWithdrawalListResponse(ws []entity.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(ws))
	for i := range ws {
		out = append(out, NewWithdrawalResponse(&ws[i]))
	}
	return out
}
