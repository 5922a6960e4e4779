package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onlineshop-backend/internal/models"
)

// ProductRepo is the catalog store. The order workflow only reads from
// it; writes happen through seeding.
type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ListAll returns products in insertion order. page and limit are both
// optional; zero values disable pagination.
func (r *ProductRepo) ListAll(ctx context.Context, page, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if page > 0 && limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}

	products := make([]models.Product, 0)
	err := query.Find(&products).Error
	return products, err
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *ProductRepo) CreateBatch(ctx context.Context, products []models.Product) error {
	return r.db.WithContext(ctx).Create(&products).Error
}
