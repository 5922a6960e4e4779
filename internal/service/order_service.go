package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"onlineshop-backend/internal/models"
	"onlineshop-backend/internal/repository"
)

// CatalogStore is the read-only product lookup the workflow depends on.
type CatalogStore interface {
	FindByID(ctx context.Context, id uint) (models.Product, error)
}

// OrderStore persists and loads order aggregates.
type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (models.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error)
}

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerEmail string
	Items         []OrderItemInput
}

// OrderService implements the order-creation workflow: validate the
// request, resolve each product, snapshot prices, compute the total and
// persist the aggregate atomically.
type OrderService struct {
	catalog CatalogStore
	orders  OrderStore
}

func NewOrderService(catalog CatalogStore, orders OrderStore) *OrderService {
	return &OrderService{catalog: catalog, orders: orders}
}

func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (models.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return models.Order{}, ValidationError{Reason: "customerName is required"}
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return models.Order{}, ValidationError{Reason: "customerEmail is required"}
	}
	if len(input.Items) == 0 {
		return models.Order{}, ValidationError{Reason: "at least one item is required"}
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return models.Order{}, ValidationError{Reason: "quantity must be greater than zero"}
		}
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	total := decimal.Zero

	for _, item := range input.Items {
		product, err := s.catalog.FindByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			return models.Order{}, ProductNotFoundError{ProductID: item.ProductID}
		}
		if err != nil {
			return models.Order{}, err
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		total = total.Add(lineTotal)
	}

	order := models.Order{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		TotalAmount:   total,
		Items:         items,
	}

	if err := s.orders.Save(ctx, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// GetOrdersByEmail returns every order placed under the given email,
// matched exactly, in insertion order.
func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.FindByCustomerEmail(ctx, email)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uint) (models.Order, error) {
	return s.orders.FindByID(ctx, id)
}
