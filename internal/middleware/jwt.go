package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bistro_backend/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// ContextEmailKey is where the verified identity's email lands in the gin context
const ContextEmailKey = "email"

// JWTAuthMiddleware validates the bearer token and stores the verified
// email in the request context. Pure token work, no store access; the same
// generic 401 covers a missing header, a garbled one, a bad signature and
// an expired token.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		c.Set(ContextEmailKey, claims.Email) // Store verified email in context
		c.Next()                             // Proceed to the next handler
	}
}
