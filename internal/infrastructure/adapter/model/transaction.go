package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index"`
	Type        string    `gorm:"not null;size:20"`
	Amount      int64     `gorm:"not null"` // Signed amount in cents
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
