package main

import (
	"context"  // context package is needed for Redis operations
	"log"      // log package is needed for logging
	"net/http" // HTTP status codes

	"bistro_backend/internal/api"        // Custom package for API handlers
	"bistro_backend/internal/config"     // Custom package for configuration
	"bistro_backend/internal/mail"       // Mailgun confirmation sender
	"bistro_backend/internal/middleware" // Custom package for middleware
	"bistro_backend/internal/payment"    // Intent client and recorder

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Payment intent client: real Stripe when a key is configured,
	// otherwise a local issuer for development
	var intentClient payment.IntentClient
	if cfg.StripeSecretKey != "" {
		intentClient = payment.NewStripeIntentClient(cfg.StripeSecretKey)
	} else {
		logrus.Warn("STRIPE_SECRET_KEY not set, using local dev intent issuer")
		intentClient = payment.DevIntentClient{}
	}

	// Confirmation mail sink; payments still record without one
	var notifier payment.Notifier
	if cfg.MailgunAPIKey != "" && cfg.MailgunDomain != "" {
		notifier = mail.NewMailgunNotifier(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailFrom)
	} else {
		logrus.Warn("Mailgun not configured, payment confirmation mails disabled")
	}
	recorder := payment.NewRecorder(db, notifier) // Completed-payment flow

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Liveness banner
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "boss is sitting...")
	})

	// Token issuance
	r.POST("/jwt", api.IssueTokenHandler(cfg.JWTSecret)) // Sign a supplied identity, 1h expiry

	// Open resource routes
	r.POST("/users", api.CreateUserHandler(db))                          // Signup endpoint
	r.GET("/menu", api.ListMenuHandler(db, redisClient))                 // Full menu, cached
	r.GET("/menu/:id", api.GetMenuItemHandler(db))                       // Single menu item
	r.GET("/reviews", api.ListReviewsHandler(db))                        // All reviews
	r.POST("/create-payment-intent", api.CreatePaymentIntentHandler(intentClient)) // Provider handshake
	r.POST("/payments", api.RecordPaymentHandler(recorder, redisClient)) // Record a completed payment

	// Token-protected routes (verified identity, any role)
	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.GET("/users/admin/:email", api.IsAdminHandler(db)) // Own-role lookup
	authed.POST("/reviews", api.CreateReviewHandler(db))      // Post a review
	authed.GET("/carts", api.ListCartHandler(db))             // Own cart listing
	authed.POST("/carts", api.CreateCartHandler(db))          // Add to cart
	authed.DELETE("/carts/:id", api.DeleteCartHandler(db))    // Remove from cart
	authed.GET("/payments/:email", api.ListPaymentsHandler(db)) // Own payment history

	// Admin routes (verified identity with stored admin role)
	admin := r.Group("")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	admin.GET("/users", api.ListUsersHandler(db))                      // List users endpoint
	admin.DELETE("/users/:id", api.DeleteUserHandler(db))              // Delete user endpoint
	admin.PATCH("/users/admin/:id", api.PromoteUserHandler(db))        // Role promotion endpoint
	admin.POST("/menu", api.CreateMenuItemHandler(db, redisClient))    // Create menu item endpoint
	admin.PATCH("/menu/:id", api.UpdateMenuItemHandler(db, redisClient))  // Update menu item endpoint
	admin.DELETE("/menu/:id", api.DeleteMenuItemHandler(db, redisClient)) // Delete menu item endpoint
	admin.GET("/admin-stats", api.AdminStatsHandler(db, redisClient))  // Dashboard stats endpoint
	admin.GET("/order-stats", api.OrderStatsHandler(db, redisClient))  // Per-category order stats endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
