package middleware

import (
	"net/http"

	"portfolio-app/database"
	"portfolio-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireVerifiedAccount blocks dashboard writes from accounts that
// never confirmed their email. The token alone is not trusted for this:
// verification can be granted after the token was issued.
func RequireVerifiedAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("email")
		var user users.User

		if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Account not found",
			})
			return
		}

		if !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Please confirm your email address before managing the gallery",
			})
			return
		}

		c.Next()
	}
}
