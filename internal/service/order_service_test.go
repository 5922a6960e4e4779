package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"onlineshop-backend/internal/models"
	"onlineshop-backend/internal/repository"
)

type fakeCatalog struct {
	products map[uint]models.Product
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uint) (models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return models.Product{}, repository.ErrNotFound
	}
	return product, nil
}

type fakeOrderStore struct {
	orders  []models.Order
	saveErr error
}

func (f *fakeOrderStore) Save(ctx context.Context, order *models.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	order.ID = uint(len(f.orders) + 1)
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = uint(len(f.orders)*10 + i + 1)
		order.Items[i].OrderID = order.ID
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id uint) (models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, repository.ErrNotFound
}

func (f *fakeOrderStore) FindByCustomerEmail(ctx context.Context, email string) ([]models.Order, error) {
	matches := make([]models.Order, 0)
	for _, order := range f.orders {
		if order.CustomerEmail == email {
			matches = append(matches, order)
		}
	}
	return matches, nil
}

func fixtureCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[uint]models.Product{
		1: {ID: 1, Name: "Campus Hoodie", Price: decimal.RequireFromString("49.90")},
		2: {ID: 2, Name: "Kaffeetasse", Price: decimal.RequireFromString("12.50")},
		3: {ID: 3, Name: "Notizbuch", Price: decimal.RequireFromString("7.90")},
	}}
}

func TestCreateOrderComputesExactTotal(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NotZero(t, order.ID)
	require.False(t, order.CreatedAt.IsZero())
	require.Len(t, order.Items, 1)
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("99.80")),
		"expected total 99.80, got %s", order.TotalAmount)
	require.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("49.90")))
	require.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrderPreservesItemOrderAndSumsLines(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items: []OrderItemInput{
			{ProductID: 3, Quantity: 1},
			{ProductID: 2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	require.Equal(t, uint(3), order.Items[0].ProductID)
	require.Equal(t, uint(2), order.Items[1].ProductID)
	require.True(t, order.Items[1].LineTotal.Equal(decimal.RequireFromString("37.50")))
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("45.40")),
		"expected total 45.40, got %s", order.TotalAmount)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items:         []OrderItemInput{},
	})

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Empty(t, store.orders, "no order may be persisted on validation failure")
}

func TestCreateOrderRejectsMissingCustomerFields(t *testing.T) {
	tests := []struct {
		name  string
		input CreateOrderInput
	}{
		{"blank name", CreateOrderInput{
			CustomerName:  "   ",
			CustomerEmail: "test@example.com",
			Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
		}},
		{"missing email", CreateOrderInput{
			CustomerName: "Test Kunde",
			Items:        []OrderItemInput{{ProductID: 1, Quantity: 1}},
		}},
		{"zero quantity", CreateOrderInput{
			CustomerName:  "Test Kunde",
			CustomerEmail: "test@example.com",
			Items:         []OrderItemInput{{ProductID: 1, Quantity: 0}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeOrderStore{}
			svc := NewOrderService(fixtureCatalog(), store)

			_, err := svc.CreateOrder(context.Background(), tc.input)

			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Empty(t, store.orders)
		})
	}
}

func TestCreateOrderUnknownProductLeavesNoTrace(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})

	var notFoundErr ProductNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	require.Equal(t, uint(9999), notFoundErr.ProductID)
	require.Empty(t, store.orders, "partial orders must not be persisted")
}

func TestCreateOrderSnapshotsPriceAtCreationTime(t *testing.T) {
	catalog := fixtureCatalog()
	store := &fakeOrderStore{}
	svc := NewOrderService(catalog, store)

	order, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	// catalog price changes after the order was placed
	hoodie := catalog.products[1]
	hoodie.Price = decimal.RequireFromString("59.90")
	catalog.products[1] = hoodie

	reloaded, err := svc.GetOrderByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.True(t, reloaded.Items[0].UnitPrice.Equal(decimal.RequireFromString("49.90")))
	require.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("49.90")))
}

func TestCreateOrderPropagatesStorageFailure(t *testing.T) {
	store := &fakeOrderStore{saveErr: errors.New("connection reset")}
	svc := NewOrderService(fixtureCatalog(), store)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.EqualError(t, err, "connection reset")
	require.Empty(t, store.orders)
}

func TestGetOrdersByEmailReturnsMatchingOrders(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde 2",
		CustomerEmail: "kunde2@example.com",
		Items:         []OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	orders, err := svc.GetOrdersByEmail(context.Background(), "kunde2@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	require.Equal(t, "kunde2@example.com", orders[0].CustomerEmail)

	// reads are idempotent
	again, err := svc.GetOrdersByEmail(context.Background(), "kunde2@example.com")
	require.NoError(t, err)
	require.Equal(t, orders, again)

	// exact match only
	none, err := svc.GetOrdersByEmail(context.Background(), "KUNDE2@example.com")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCreateOrderRoundTripsByID(t *testing.T) {
	store := &fakeOrderStore{}
	svc := NewOrderService(fixtureCatalog(), store)

	created, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Test Kunde",
		CustomerEmail: "test@example.com",
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		},
	})
	require.NoError(t, err)

	loaded, err := svc.GetOrderByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.CustomerName, loaded.CustomerName)
	require.Equal(t, created.CustomerEmail, loaded.CustomerEmail)
	require.True(t, created.TotalAmount.Equal(loaded.TotalAmount))
	require.Equal(t, created.Items, loaded.Items)
}

func TestGetOrderByIDUnknownID(t *testing.T) {
	svc := NewOrderService(fixtureCatalog(), &fakeOrderStore{})

	_, err := svc.GetOrderByID(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
