package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"onlineshop-backend/internal/models"
)

// Connect opens the postgres connection used by every repository.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema. AutoMigrate is idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}
