package main

import (
	"log"

	"food_storefront/internal/auth"
	"food_storefront/internal/config"
	"food_storefront/internal/database"
	"food_storefront/internal/handlers"
	"food_storefront/internal/migrations"
	"food_storefront/internal/redis"
	"food_storefront/internal/repository"
	"food_storefront/internal/services"
	"food_storefront/internal/store"
	"food_storefront/pkg/foodapi"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Select the storage backend. All three implement the same
	// repository contracts.
	var dishRepo repository.DishRepository
	var orderRepo repository.OrderRepository

	switch cfg.StorageBackend {
	case "postgres":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := migrations.RunMigrations(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		dishRepo = repository.NewDishRepository(db)
		orderRepo = repository.NewOrderRepository(db)

	case "remote":
		client := foodapi.NewClient(cfg.RemoteAPIURL)
		dishRepo = client
		orderRepo = client.Orders()

	case "redis":
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		catalogStore, err := store.NewCatalogStore(redisClient)
		if err != nil {
			log.Fatal("Failed to initialize catalog store:", err)
		}
		orderStore, err := store.NewOrderStore(redisClient)
		if err != nil {
			log.Fatal("Failed to initialize order store:", err)
		}
		dishRepo = catalogStore
		orderRepo = orderStore

	default:
		log.Fatal("Unknown storage backend: ", cfg.StorageBackend)
	}

	// Initialize services
	catalogService := services.NewCatalogService(dishRepo, cfg.PlaceholderImage)
	orderService := services.NewOrderService(orderRepo, cfg.PublicBaseURL)

	// Initialize role gate with the demo credential set
	gate := auth.NewGate(auth.DefaultCredentials())

	// Initialize handlers
	dishHandler := handlers.NewDishHandler(catalogService, gate)
	orderHandler := handlers.NewOrderHandler(orderService, gate)
	sessionHandler := handlers.NewSessionHandler(gate, catalogService)

	// Setup routes
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		api.POST("/auth/login", sessionHandler.Login)
		api.POST("/auth/logout", sessionHandler.Logout)

		api.GET("/dishes", dishHandler.ListDishes)
		api.POST("/dishes", dishHandler.CreateDish)
		api.PUT("/dishes/:id", dishHandler.UpdateDish)
		api.DELETE("/dishes/:id", dishHandler.DeleteDish)

		api.GET("/cart", sessionHandler.GetCart)
		api.POST("/cart/items", sessionHandler.AddCartItem)
		api.PATCH("/cart/items/:dishId", sessionHandler.AdjustCartItem)
		api.DELETE("/cart/items/:dishId", sessionHandler.RemoveCartItem)

		api.GET("/orders", orderHandler.ListOrders)
		api.POST("/orders", orderHandler.Checkout)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		api.GET("/orders/:id/qrcode", orderHandler.QRCode)
	}

	// Start server
	log.Printf("Server starting on port %s (backend: %s)", cfg.ServerPort, cfg.StorageBackend)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
