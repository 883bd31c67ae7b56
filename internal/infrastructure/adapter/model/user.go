package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:255"`
	Email        string    `gorm:"uniqueIndex;not null;size:255"`
	Phone        string    `gorm:"not null;size:50"`
	PasswordHash string    `gorm:"column:password;not null;size:255"`
	ReferralCode string    `gorm:"size:100"`
	Balance      int64     `gorm:"not null;default:0"` // Balance in cents
	IsActivated  bool      `gorm:"not null;default:false"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
