package api

import (
	"net/http" // HTTP status codes

	"bistro_backend/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// TokenRequest is the identity payload the client asks to have signed.
// There is no credential check here: the frontend authenticates the user
// elsewhere and trades the resulting identity for an API token.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"` // Identity key
	Name  string `json:"name"`                           // Display name, optional
}

// TokenResponse carries the signed token
type TokenResponse struct {
	Token string `json:"token"` // JWT token, 1 hour expiry
}

// IssueTokenHandler signs the supplied identity into a bearer token
func IssueTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Sign the identity with a fixed 1 hour expiry
		token, err := utils.GenerateJWT(req.Email, req.Name, jwtSecret)
		if err != nil {
			// If signing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}
