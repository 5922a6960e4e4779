package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onlineshop-backend/internal/models"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Save persists the order header and all its items in one transaction.
// The store assigns ID and CreatedAt; both are populated on the passed
// order when Save returns nil.
func (r *OrderRepo) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// FindByCustomerEmail matches the email exactly (case-sensitive) and
// returns orders in insertion order. An unknown email yields an empty
// slice, not an error.
func (r *OrderRepo) FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_email = ?", email).
		Order("id ASC").
		Find(&orders).Error
	return orders, err
}
