package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The order workflow only ever reads it;
// rows are created by seeding at startup.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;type:varchar(255)" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL    string          `gorm:"type:varchar(512)" json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
