package main

import (
	"log"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"storefront/internal/services"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authService := services.NewAuthService(userRepo, redisClient, sessionTTL)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, couponRepo)
	couponService := services.NewCouponService(couponRepo)

	if err := authService.EnsureAdminUser(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to ensure admin user:", err)
	}

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	couponHandler := handlers.NewCouponHandler(couponService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo)
	adminHandler := handlers.NewAdminHandler(authService, orderService)

	// Setup routes
	router := gin.Default()

	// Every response carries permissive CORS headers; preflight is answered
	// by the middleware.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"msg": "pong"})
	})

	api := router.Group("/api")
	{
		// Public storefront endpoints — customers check out without accounts
		rateWindow := time.Duration(cfg.OrderRateWindowSec) * time.Second
		api.POST("/orders", middleware.RateLimit(redisClient, cfg.OrderRateLimit, rateWindow), orderHandler.CreateOrder)
		api.POST("/coupons/apply", couponHandler.ApplyCoupon)
		api.GET("/settings/shipping", settingsHandler.GetShippingRates)

		// Back office
		api.POST("/admin/login", adminHandler.Login)
		admin := api.Group("/admin", middleware.RequireRole(authService, models.RoleAdmin))
		{
			admin.POST("/logout", adminHandler.Logout)
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.PATCH("/orders/:id/payment-status", adminHandler.UpdatePaymentStatus)
			admin.PUT("/settings/shipping", settingsHandler.UpdateShippingRates)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
