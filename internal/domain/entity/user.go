package entity

import (
	"time"

	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
)

// User represents a registered account with a wallet balance
type User struct {
	ID           uint64    // Unique identifier for the user
	Name         string    // Display name
	Email        string    // Unique login email
	Phone        string    // Contact phone number
	PasswordHash string    // Salted one-way hash, never the plaintext password
	ReferralCode string    // Optional referral code supplied at registration
	balance      int64     // Balance stored in cents to avoid floating point precision issues (private)
	IsActivated  bool      // Set once the user claims the out-of-band activation payment
	IsAdmin      bool      // Administrative accounts
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user with a zero balance. The password must already
// be hashed by the authentication layer.
func NewUser(name, email, phone, passwordHash, referralCode string, timeProvider coreport.TimeProvider) (*User, error) {
	if email == "" {
		return nil, errs.NewValidationError("email", "email is required")
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "password is required")
	}

	return &User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		ReferralCode: referralCode,
		balance:      0,
		IsActivated:  false,
		IsAdmin:      false,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64) {
	u.balance = balanceInCents
}
