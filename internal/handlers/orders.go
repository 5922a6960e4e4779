package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"onlineshop-backend/internal/repository"
	"onlineshop-backend/internal/service"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	CustomerName  string                   `json:"customerName" binding:"required"`
	CustomerEmail string                   `json:"customerEmail" binding:"required"`
	Items         []createOrderItemRequest `json:"items" binding:"required"`
}

func (r createOrderRequest) toInput() service.CreateOrderInput {
	items := make([]service.OrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return service.CreateOrderInput{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Items:         items,
	}
}

/* =========================
   CREATE ORDER
========================= */

// POST /api/orders
func CreateOrder(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := svc.CreateOrder(c.Request.Context(), req.toInput())
		if err != nil {
			var notFoundErr service.ProductNotFoundError
			if errors.As(err, &notFoundErr) {
				log.Printf("[%s] unknown product %d", route, notFoundErr.ProductID)
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error":     "product not found",
					"productId": notFoundErr.ProductID,
				})
				return
			}
			var validationErr service.ValidationError
			if errors.As(err, &validationErr) {
				respondWithError(c, http.StatusBadRequest, route, validationErr.Reason)
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order %d created for %s", route, order.ID, order.CustomerEmail)
		c.JSON(http.StatusOK, order)
	}
}

/* =========================
   GET ORDERS
========================= */

// GET /api/orders?email=...
func GetOrders(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		email := c.Query("email")
		if email == "" {
			respondWithError(c, http.StatusBadRequest, route, "email query param is required")
			return
		}

		orders, err := svc.GetOrdersByEmail(c.Request.Context(), email)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(svc *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders/:id"
		defer handlePanic(c, route)

		id, err := parseIDParam(c, "id")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid order id")
			return
		}

		order, err := svc.GetOrderByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			respondWithError(c, http.StatusNotFound, route, "order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
