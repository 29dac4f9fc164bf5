package routes

import (
	adminapi "portfolio-app/internal/api/admin"
	artworksapi "portfolio-app/internal/api/artworks"
	authapi "portfolio-app/internal/api/auth"
	contactapi "portfolio-app/internal/api/contact"
	galleryapi "portfolio-app/internal/api/gallery"
	usersapi "portfolio-app/internal/api/users"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/gateway"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *gateway.Store, images *gateway.ImageStore) {
	artworksH := artworksapi.NewHandler(store, images)
	galleryH := galleryapi.NewHandler(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, read-only. Degrades to the fallback set, never errors.
	r.GET("/gallery", galleryH.List)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", usersapi.VerifyEmail)
	public.POST("/contact", contactapi.Relay)

	// Authenticated dashboard
	auth := r.Group("/admin")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/dashboard", middleware.RequireRole("admin"), adminapi.Dashboard)

	manage := auth.Group("/")
	manage.Use(middleware.RequireVerifiedAccount())
	manage.GET("/artworks", artworksH.List)
	manage.POST("/artworks", artworksH.Create)
	manage.PUT("/artworks/:id", artworksH.Update)
	manage.DELETE("/artworks/:id", artworksH.Delete)
}
