package main

import (
	"log"
	"os"
	"strings"

	"auth"
	"core"
	"shot-tracker-api/config"
	_ "shot-tracker-api/docs" // Swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Shot Tracker API
// @version         1.0
// @description     Single-team basketball shot tracking: roster, games, shot wizard and shooting statistics.

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	config.ConnectDatabase()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = !corsConfig.AllowAllOrigins
	r.Use(cors.New(corsConfig))

	// Identity gateway routes (OAuth callback, session, logout)
	authModule := auth.NewModule(config.DB)
	authModule.SetupRoutes(r)

	// Tracking routes (team, games, wizard, stats)
	coreModule := core.NewModule(config.DB, logger)
	coreModule.SetupRoutes(r)

	if err := coreModule.StartScheduler(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer coreModule.StopScheduler()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}
