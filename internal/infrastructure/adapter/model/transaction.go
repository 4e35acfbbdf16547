package model

import (
	"time"
)

// Transaction represents the database model for reconciled transactions.
// The order ID index is deliberately non-unique: the store is append-only
// on create and dedup is the dispatcher's concern.
type Transaction struct {
	ID            string    `gorm:"primaryKey;size:36"`
	OrderID       string    `gorm:"not null;index;size:255"`
	ProductID     string    `gorm:"not null;size:100"`
	UserID        string    `gorm:"not null;index;size:100"`
	Amount        float64   `gorm:"not null;type:numeric(14,2)"`
	Currency      string    `gorm:"not null;size:8"`
	Status        string    `gorm:"not null;size:16"`
	Reference     string    `gorm:"size:255"`
	CustomerName  string    `gorm:"size:255"`
	CustomerEmail string    `gorm:"size:255"`
	CustomerPhone string    `gorm:"size:64"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
