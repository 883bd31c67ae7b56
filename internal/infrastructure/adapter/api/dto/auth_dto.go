package dto

import (
	"time"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
)

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferralCode string `json:"referralCode"`
}

// LoginRequest represents the API request for authenticating
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server and the balance is a decimal string.
type UserResponse struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ReferralCode string    `json:"referralCode,omitempty"`
	Balance      string    `json:"balance"`
	IsActivated  bool      `json:"isActivated"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUserResponse maps a user entity to its API shape
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		ReferralCode: user.ReferralCode,
		Balance:      user.FormattedBalance(),
		IsActivated:  user.IsActivated,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
	}
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
