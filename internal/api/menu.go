package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"bistro_backend/internal/domain" // Importing domain models
	"bistro_backend/internal/utils"  // Cache helper functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// MenuItemRequest is the create/update payload for a menu item
type MenuItemRequest struct {
	Name     string  `json:"name" binding:"required"`     // Dish name
	Category string  `json:"category" binding:"required"` // Category
	Price    float64 `json:"price" binding:"required,gt=0"` // Price must be positive
	Recipe   string  `json:"recipe"`                      // Recipe description
	Image    string  `json:"image"`                       // Image URL
}

// ListMenuHandler returns the full menu, cached for a minute
func ListMenuHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached []domain.MenuItem
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, utils.MenuCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached menu
			return
		}
		items := []domain.MenuItem{} // Empty slice, not nil: serializes as []
		if err := db.Find(&items).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
			return
		}
		// Cache the menu for future requests
		_ = utils.SetCache(ctx, rdb, utils.MenuCacheKey, items, utils.CacheTTL)
		c.JSON(http.StatusOK, items) // Return the menu
	}
}

// GetMenuItemHandler returns a single menu item by id
func GetMenuItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse item id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}
		var item domain.MenuItem // Fetch item from database
		if err := db.First(&item, id).Error; err != nil {
			// If item not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusOK, item) // Return the item
	}
}

// CreateMenuItemHandler inserts a menu item (admin only)
func CreateMenuItemHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MenuItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		item := domain.MenuItem{
			Name:     req.Name,     // Dish name
			Category: req.Category, // Category
			Price:    req.Price,    // Price
			Recipe:   req.Recipe,   // Recipe description
			Image:    req.Image,    // Image URL
		}
		if err := db.Create(&item).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}
		// Invalidate the cached menu listing
		_ = utils.DeleteCache(context.Background(), rdb, utils.MenuCacheKey)
		c.JSON(http.StatusOK, gin.H{"insertedId": item.ID}) // Echo the store result
	}
}

// UpdateMenuItemHandler updates a menu item's fields (admin only)
func UpdateMenuItemHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse item id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}
		var req MenuItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Update the mutable fields; identity stays fixed
		res := db.Model(&domain.MenuItem{}).Where("id = ?", id).Updates(map[string]any{
			"name":     req.Name,     // Dish name
			"category": req.Category, // Category
			"price":    req.Price,    // Price
			"recipe":   req.Recipe,   // Recipe description
			"image":    req.Image,    // Image URL
		})
		if res.Error != nil {
			// If updating fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		// Invalidate the cached menu listing
		_ = utils.DeleteCache(context.Background(), rdb, utils.MenuCacheKey)
		c.JSON(http.StatusOK, gin.H{"modifiedCount": res.RowsAffected}) // Echo the store result
	}
}

// DeleteMenuItemHandler removes a menu item (admin only). Payment items
// referencing it keep their id; those rows silently drop out of order stats.
func DeleteMenuItemHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse item id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
			return
		}
		res := db.Delete(&domain.MenuItem{}, id) // Delete by primary key
		if res.Error != nil {
			// If deletion fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		// Invalidate the cached menu listing
		_ = utils.DeleteCache(context.Background(), rdb, utils.MenuCacheKey)
		c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected}) // Echo the store result
	}
}
