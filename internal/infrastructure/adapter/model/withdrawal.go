package model

import (
	"time"
)

// Withdrawal represents the database model for payout requests
type Withdrawal struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Amount      int64     `gorm:"not null"` // Requested amount in cents
	Method      string    `gorm:"not null;size:100"`
	PhoneNumber string    `gorm:"not null;size:50"`
	Status      string    `gorm:"not null;size:20;default:pending"`
	CreatedAt   time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Withdrawal
func (Withdrawal) TableName() string {
	return "withdrawals"
}
