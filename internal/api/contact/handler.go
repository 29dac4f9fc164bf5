package contact

import (
	"fmt"
	"net/http"

	"portfolio-app/config"

	"github.com/gin-gonic/gin"
)

type relayInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Message      string `json:"message" binding:"required"`
	ArtworkTitle string `json:"artwork_title"`
}

// Relay forwards a visitor inquiry to the studio inbox. An inquiry
// opened from a specific piece carries its title in the subject.
func Relay(c *gin.Context) {
	var input relayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject := "New Message from Atelier Visitor"
	if input.ArtworkTitle != "" {
		subject = fmt.Sprintf("Inquiry for %q", input.ArtworkTitle)
	}

	if err := sendInquiry(config.CONTACT_TO, subject, input); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send your message. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your message is on its way."})
}
