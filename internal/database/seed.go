package database

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"onlineshop-backend/internal/models"
)

// ProductSeeder is the slice of the catalog store seeding needs.
type ProductSeeder interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []models.Product) error
}

// SeedProducts returns the fixture catalog inserted on first startup.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Campus Hoodie",
			Description: "Bequemer Hoodie mit Unilogo",
			Price:       decimal.RequireFromString("49.90"),
			ImageURL:    "https://example.com/images/hoodie.png",
		},
		{
			Name:        "Kaffeetasse",
			Description: "Weiße Tasse mit CampusShop-Logo",
			Price:       decimal.RequireFromString("12.50"),
			ImageURL:    "https://example.com/images/mug.png",
		},
		{
			Name:        "Notizbuch",
			Description: "DIN A5 Notizbuch kariert",
			Price:       decimal.RequireFromString("7.90"),
			ImageURL:    "https://example.com/images/notebook.png",
		},
	}
}

// EnsureSeedData populates the catalog with sample products when it is
// empty. Guarded by a count check, so calling it on every startup is safe.
func EnsureSeedData(ctx context.Context, products ProductSeeder) error {
	count, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := SeedProducts()
	if err := products.CreateBatch(ctx, seed); err != nil {
		return err
	}
	log.Printf("[SEED] [INFO] inserted %d sample products", len(seed))
	return nil
}
