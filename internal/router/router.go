// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/config"
	"github.com/medhub/medhub-backend/internal/handlers"
	"github.com/medhub/medhub-backend/internal/middleware"
	"github.com/medhub/medhub-backend/internal/services"
	"github.com/medhub/medhub-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db)
	directoryService := services.NewDirectoryService(db)
	reviewService := services.NewReviewService(db)
	comparisonService := services.NewComparisonService(db)
	authService := services.NewAuthService(db, cfg)
	chatService := services.NewChatService(db, cfg.Assistant)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id/reviews", reviewHandler.ListReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.CreateReview)
		}

		// Directory routes
		api.GET("/categories", directoryHandler.ListCategories)
		api.GET("/topics", directoryHandler.ListTopics)
		api.GET("/topics/:slug", directoryHandler.GetTopicBySlug)
		api.GET("/stats", directoryHandler.ListStats)
		api.GET("/articles", directoryHandler.ListArticles)
		api.GET("/events", directoryHandler.ListEvents)

		// Comparison routes
		comparisons := api.Group("/comparisons")
		{
			comparisons.POST("", middleware.OptionalAuth(), comparisonHandler.CreateComparison)
			comparisons.GET("/:id", comparisonHandler.GetComparison)
		}

		// AI assistant routes
		conversations := api.Group("/conversations")
		conversations.Use(middleware.AuthRequired())
		{
			conversations.GET("", chatHandler.ListConversations)
			conversations.POST("", chatHandler.CreateConversation)
			conversations.GET("/:id", chatHandler.GetConversation)
			conversations.POST("/:id/messages", middleware.ChatRateLimit(), chatHandler.SendMessage)
		}
	}

	return r
}
