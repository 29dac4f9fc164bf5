package main

import (
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/gateway"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	store := gateway.NewStore(database.DB)
	images := gateway.NewImageStore(
		config.S3_ACCESS_KEY_ID,
		config.S3_SECRET_ACCESS_KEY,
		config.S3_ENDPOINT,
		config.S3_BUCKET,
		config.S3_PUBLIC_BASE_URL,
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store, images)

	r.Run(":" + config.PORT)
}
