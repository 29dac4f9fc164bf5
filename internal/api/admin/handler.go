package admin

import (
	"net/http"
	"time"

	"portfolio-app/database"
	"portfolio-app/internal/domain/artworks"
	"portfolio-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type DashboardStats struct {
	TotalArtworks int64      `json:"total_artworks"`
	TotalUsers    int64      `json:"total_users"`
	LatestArtwork *time.Time `json:"latest_artwork,omitempty"`
}

// Dashboard returns the headline numbers shown above the editor.
func Dashboard(c *gin.Context) {
	var stats DashboardStats

	if err := database.DB.Model(&artworks.Artwork{}).Count(&stats.TotalArtworks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	if err := database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	var latest artworks.Artwork
	if err := database.DB.Order("created_at DESC").First(&latest).Error; err == nil {
		stats.LatestArtwork = &latest.CreatedAt
	}

	c.JSON(http.StatusOK, stats)
}
