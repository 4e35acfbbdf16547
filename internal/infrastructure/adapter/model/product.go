package model

import (
	"time"
)

// Product represents the database model for catalog products
type Product struct {
	ID          string    `gorm:"primaryKey;size:100"`
	Name        string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"size:512"`
	PriceUSD    float64   `gorm:"not null;type:numeric(12,2)"`
	PriceCOP    float64   `gorm:"not null;type:numeric(14,2)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
