package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"bistro_backend/internal/domain"     // Importing domain models
	"bistro_backend/internal/middleware" // Context keys

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CartRequest is the payload for adding a menu item to the cart
type CartRequest struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"` // Menu item to add
	Name       string  `json:"name"`                          // Denormalized dish name
	Price      float64 `json:"price" binding:"required,gt=0"` // Price at the time of adding
	Image      string  `json:"image"`                         // Denormalized image URL
}

// ListCartHandler returns the caller's cart entries. Ownership rule: the
// email query parameter must match the token's email.
func ListCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email") // Requested cart owner
		// A caller may only read their own cart
		if email != c.GetString(middleware.ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		entries := []domain.CartEntry{} // Empty slice, not nil: serializes as []
		if err := db.Where("email = ?", email).Find(&entries).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, entries) // Return the raw list, no envelope
	}
}

// CreateCartHandler adds a menu item to the caller's cart. The owning
// email comes from the verified token, never from the body.
func CreateCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		entry := domain.CartEntry{
			Email:      c.GetString(middleware.ContextEmailKey), // Owner from the verified token
			MenuItemID: req.MenuItemID,                          // Menu item
			Name:       req.Name,                                // Dish name
			Price:      req.Price,                               // Price at the time of adding
			Image:      req.Image,                               // Image URL
		}
		if err := db.Create(&entry).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"insertedId": entry.ID}) // Echo the store result
	}
}

// DeleteCartHandler removes a cart entry by id
func DeleteCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse entry id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart entry id"})
			return
		}
		res := db.Delete(&domain.CartEntry{}, id) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected}) // Echo the store result
	}
}
