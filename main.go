package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBodySize))

	userRepo := repository.GetUserRepo(utils.MongoClient)
	userService := &usecase.UserService{Users: userRepo}
	ledgerService := &usecase.LedgerService{Users: userRepo}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "BeStrong API up and running"})
	})
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api/users")
	{
		public.POST("/register", func(c *gin.Context) {
			handler.RegistrationHandler(c, userService)
		})
		public.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, userService, userRepo)
		})
	}

	auth := router.Group("/api/auth")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/logout", handler.LogoutHandler)
		auth.POST("/2fa/setup", func(c *gin.Context) {
			handler.Generate2FASecretHandler(c, userRepo)
		})
		auth.POST("/2fa/enable", func(c *gin.Context) {
			handler.Enable2FAHandler(c, userRepo)
		})
		auth.POST("/2fa/disable", func(c *gin.Context) {
			handler.Disable2FAHandler(c, userRepo)
		})
		auth.POST("/2fa/recover", func(c *gin.Context) {
			handler.UseRecoveryCodeHandler(c, userRepo)
		})
	}
	// Refresh authenticates with the refresh token itself.
	router.POST("/api/auth/refresh", handler.RefreshTokenHandler)

	protected := router.Group("/api/users/:id")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireOwner())
	{
		protected.GET("", func(c *gin.Context) {
			handler.GetUserHandler(c, userService)
		})
		protected.PUT("", func(c *gin.Context) {
			handler.UpdateUserHandler(c, userService)
		})

		protected.POST("/activities", func(c *gin.Context) {
			handler.AddActivityHandler(c, ledgerService)
		})
		protected.PUT("/activities/:activityId", func(c *gin.Context) {
			handler.EditActivityHandler(c, ledgerService)
		})
		protected.DELETE("/activities/:activityId", func(c *gin.Context) {
			handler.DeleteActivityHandler(c, ledgerService)
		})

		protected.GET("/history", func(c *gin.Context) {
			handler.HistoryHandler(c, ledgerService)
		})

		protected.PUT("/meals", func(c *gin.Context) {
			handler.SetMealHandler(c, ledgerService)
		})
	}

	return router
}

func main() {
	dbConfig := config.LoadDatabaseConfig()
	utils.InitMongoClient(dbConfig.ClientOptions())

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to initialize token blacklist: %v", err)
		}
		services.TokenBlacklist = blacklist
	} else {
		log.Println("REDIS_URL not set, token blacklist disabled")
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
