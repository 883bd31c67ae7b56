package entity

import (
	"time"

	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
)

// WithdrawalStatus defines possible status values for a payout request
type WithdrawalStatus string

// Withdrawal statuses. Only pending is assigned in-process; approved and
// rejected exist for a future back-office approval flow.
const (
	StatusPending  WithdrawalStatus = "pending"
	StatusApproved WithdrawalStatus = "approved"
	StatusRejected WithdrawalStatus = "rejected"
)

// Withdrawal is a user-initiated payout request to a mobile-money account
type Withdrawal struct {
	ID            uint64           // Unique identifier for the request
	UserID        uint64           // ID of the requesting user
	AmountInCents int64            // Requested amount in cents, always positive
	Method        string           // Mobile-money provider tag
	PhoneNumber   string           // Destination phone number
	Status        WithdrawalStatus // pending, approved or rejected
	CreatedAt     time.Time        // When the request was created
}

// NewWithdrawal creates a new pending withdrawal request with basic validation
func NewWithdrawal(
	userID uint64,
	amountInCents int64,
	method string,
	phoneNumber string,
	timeProvider coreport.TimeProvider,
) (*Withdrawal, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountInCents <= 0 {
		return nil, errs.NewValidationError("amount", "amount must be positive")
	}
	if method == "" {
		return nil, errs.NewValidationError("method", "method is required")
	}
	if phoneNumber == "" {
		return nil, errs.NewValidationError("phoneNumber", "phone number is required")
	}

	return &Withdrawal{
		UserID:        userID,
		AmountInCents: amountInCents,
		Method:        method,
		PhoneNumber:   phoneNumber,
		Status:        StatusPending,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// FormattedAmount returns the requested amount as a decimal string with 2 decimal places
func (w *Withdrawal) FormattedAmount() string {
	return FormatCents(w.AmountInCents)
}
