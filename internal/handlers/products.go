package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"onlineshop-backend/internal/models"
	"onlineshop-backend/internal/repository"
)

// ProductCatalog is the slice of the catalog store the product
// endpoints need.
type ProductCatalog interface {
	ListAll(ctx context.Context, page, limit int) ([]models.Product, error)
	FindByID(ctx context.Context, id uint) (models.Product, error)
}

/*
GET /api/products
- page + limit are optional; without them all products are returned
*/
func GetProducts(catalog ProductCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid pagination params")
			return
		}

		products, err := catalog.ListAll(c.Request.Context(), page, limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(catalog ProductCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c, "id")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid product id")
			return
		}

		product, err := catalog.FindByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
