package main

import (
	"net/http"
	"os"

	"encyclo-cms/config"
	"encyclo-cms/handlers"
	"encyclo-cms/helper"
	"encyclo-cms/middleware"
	"encyclo-cms/models"
	"encyclo-cms/repositories"
	"encyclo-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	logger := config.InitLogger()
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found")
	}

	// Initialize database
	db := config.InitDB()
	codec := helper.NewLegacyCodec(config.LegacyEncoding())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	suggestionRepo := repositories.NewSuggestionRepository(db)
	personRepo := repositories.NewPersonRepository(db, codec)
	sectionRepo := repositories.NewSectionRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	sectionRouter := services.NewSectionRouter(personRepo, logger)
	fileMover := services.NewLocalFileMover(config.UploadDir())
	reviewService := services.NewReviewService(db, submissionRepo, sectionRepo, userRepo, auditRepo, sectionRouter, logger)
	personService := services.NewPersonService(db, suggestionRepo, personRepo, sectionRepo, userRepo, auditRepo, fileMover, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	submissionHandler := handlers.NewSubmissionHandler(reviewService)
	personHandler := handlers.NewPersonHandler(personService)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Submissions (authoring)
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", submissionHandler.CreateSubmission)
				submissions.POST("/:id/submit", submissionHandler.SubmitSubmission)
				submissions.GET("", submissionHandler.GetSubmissions)
				submissions.GET("/:id", submissionHandler.GetSubmission)
			}

			// Person suggestions (authoring)
			suggestions := protected.Group("/suggestions")
			{
				suggestions.POST("", personHandler.CreateSuggestion)
				suggestions.GET("", personHandler.GetSuggestions)
				suggestions.GET("/:id", personHandler.GetSuggestion)
			}

			// Moderation
			moderation := protected.Group("/moderation")
			moderation.Use(middleware.RequireRole(string(models.RoleModerator), string(models.RoleAdmin)))
			{
				moderation.GET("/submissions", submissionHandler.GetPendingSubmissions)
				moderation.PUT("/submissions/:id", submissionHandler.ReviewSubmission)
				moderation.GET("/suggestions", personHandler.GetPendingSuggestions)
				moderation.PUT("/suggestions/:id", personHandler.ReviewSuggestion)
			}

			// Admin: slug preview, publishing, audit trail
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
			{
				admin.GET("/suggestions/:id/slug", personHandler.PreviewSlug)
				admin.POST("/suggestions/:id/publish", personHandler.PublishSuggestion)
				admin.GET("/audit", auditHandler.GetAuditLog)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infof("Server starting on port %s", port)
	logger.Fatal(http.ListenAndServe(":"+port, router))
}
