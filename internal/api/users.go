package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"bistro_backend/internal/domain"     // Importing domain models
	"bistro_backend/internal/middleware" // Context keys

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CreateUserRequest is the signup payload
type CreateUserRequest struct {
	Name  string `json:"name"`                           // Display name
	Email string `json:"email" binding:"required,email"` // Identity key
}

// ListUsersHandler returns all users (admin only)
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []domain.User{} // Empty slice, not nil: serializes as []
		if err := db.Find(&users).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users) // Return the raw list, no envelope
	}
}

// CreateUserHandler inserts a user unless the email is already registered.
// Open endpoint: signup happens before any token exists.
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var existing domain.User // Check for an already-registered email
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			// Duplicate signup is not an error, just a no-op with a nil insertedId
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		user := domain.User{Name: req.Name, Email: req.Email} // Role defaults to user
		if err := db.Create(&user).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"insertedId": user.ID}) // Echo the store result
	}
}

// IsAdminHandler reports whether the caller is an admin. Ownership rule:
// the email parameter must match the token's email regardless of role.
func IsAdminHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Requested email
		// A caller may only ask about their own role
		if email != c.GetString(middleware.ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		var user domain.User // Fetch user from database
		admin := false
		if err := db.Where("email = ?", email).First(&user).Error; err == nil {
			admin = user.Role == "admin" // Check stored role
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin}) // Unknown users are simply not admins
	}
}

// PromoteUserHandler sets a user's role to admin (admin only)
func PromoteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse user id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		// Promote the user
		res := db.Model(&domain.User{}).Where("id = ?", id).Update("role", "admin")
		if res.Error != nil {
			// If updating fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"modifiedCount": res.RowsAffected}) // Echo the store result
	}
}

// DeleteUserHandler removes a user by id (admin only)
func DeleteUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse user id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		res := db.Delete(&domain.User{}, id) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected}) // Echo the store result
	}
}
