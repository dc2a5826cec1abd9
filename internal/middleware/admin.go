package middleware

import (
	"net/http" // HTTP status codes

	"bistro_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AdminOnlyMiddleware checks the caller's persisted role on each request.
// Must be chained after JWTAuthMiddleware; it trusts the context email and
// never re-validates the token.
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextEmailKey) // Get verified email from context
		// Check if email exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// No stored user for this identity, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		// Check if user role is admin
		if user.Role != "admin" {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
