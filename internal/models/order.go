package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. ProductName and UnitPrice are
// snapshots taken at order time; a later catalog change must not alter
// a stored order.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderID     uint            `gorm:"not null;index" json:"-"`
	ProductID   uint            `gorm:"not null" json:"productId"`
	ProductName string          `gorm:"type:varchar(255)" json:"productName"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unitPrice"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	LineTotal   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"lineTotal"`
}

// Order is the persisted order aggregate. It owns its items: deleting
// an order cascades to them, and items never point back at their order.
// TotalAmount always equals the sum of the item line totals.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerName  string          `gorm:"not null;type:varchar(255)" json:"customerName"`
	CustomerEmail string          `gorm:"not null;type:varchar(255);index" json:"customerEmail"`
	TotalAmount   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
