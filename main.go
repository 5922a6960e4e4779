package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"onlineshop-backend/internal/config"
	"onlineshop-backend/internal/database"
	"onlineshop-backend/internal/handlers"
	"onlineshop-backend/internal/middleware"
	"onlineshop-backend/internal/repository"
	"onlineshop-backend/internal/service"
)

func main() {
	config.Load()

	// money fields serialize as plain JSON numbers, matching the frontend
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.Connect(config.AppEnv.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("postgres connected")

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	orderService := service.NewOrderService(productRepo, orderRepo)

	if err := database.EnsureSeedData(context.Background(), productRepo); err != nil {
		log.Println("⚠️ seed warning:", err)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: config.AppEnv.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := r.Group("/api")
	api.Use(middleware.AccessControl(middleware.PermitAll()))
	{
		api.GET("/products", handlers.GetProducts(productRepo))
		api.GET("/products/:id", handlers.GetProductByID(productRepo))

		api.POST("/orders", handlers.CreateOrder(orderService))
		api.GET("/orders", handlers.GetOrders(orderService))
		api.GET("/orders/:id", handlers.GetOrderByID(orderService))
	}

	r.Run(":" + config.AppEnv.Port)
}
