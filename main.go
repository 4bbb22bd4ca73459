package main

import (
	"log"
	"net/http"
	"os"

	"myblog-api/config"
	"myblog-api/handlers"
	"myblog-api/middleware"
	"myblog-api/repositories"
	"myblog-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	navigationRepo := repositories.NewNavigationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	categoryService := services.NewCategoryService(categoryRepo, articleRepo)
	navigationService := services.NewNavigationService(navigationRepo)
	seoService := services.NewSEOService(articleRepo, categoryRepo, navigationRepo, config.SiteURL())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, articleService)
	navigationHandler := handlers.NewNavigationHandler(navigationService)
	seoHandler := handlers.NewSEOHandler(seoService)

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

	// Generated artifacts
	router.GET("/sitemap.xml", seoHandler.Sitemap)
	router.GET("/robots.txt", seoHandler.Robots)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public read routes
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/articles/:id/html", articleHandler.GetPublicArticleHTML)
			public.GET("/categories", categoryHandler.GetCategories)
			public.GET("/categories/:slug", categoryHandler.GetCategoryBySlug)
			public.GET("/categories/:slug/articles", categoryHandler.GetCategoryArticles)
			public.GET("/navigation", navigationHandler.GetPublicNavigation)
		}

		// Authenticated routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/auth/logout", authHandler.Logout)

			// Admin-only mutation routes
			admin := protected.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				articles := admin.Group("/articles")
				{
					articles.GET("", articleHandler.GetArticles)
					articles.POST("", articleHandler.CreateArticle)
					articles.PUT("/:id", articleHandler.UpdateArticle)
					articles.PUT("/:id/publish", articleHandler.TogglePublished)
					articles.DELETE("/:id", articleHandler.DeleteArticle)
				}

				categories := admin.Group("/categories")
				{
					categories.POST("", categoryHandler.CreateCategory)
					categories.PUT("/:id", categoryHandler.UpdateCategory)
					categories.GET("/:id/articles/count", categoryHandler.GetArticleCount)
					categories.DELETE("/:id", categoryHandler.DeleteCategory)
				}

				navigation := admin.Group("/navigation")
				{
					navigation.GET("", navigationHandler.GetNavigation)
					navigation.POST("", navigationHandler.CreateEntry)
					navigation.PUT("/:id", navigationHandler.UpdateEntry)
					navigation.DELETE("/:id", navigationHandler.DeleteEntry)
				}
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
