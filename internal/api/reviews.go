package api

import (
	"net/http" // HTTP status codes

	"bistro_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ReviewRequest is the payload for posting a review
type ReviewRequest struct {
	Name    string  `json:"name" binding:"required"`    // Reviewer name
	Details string  `json:"details" binding:"required"` // Review text
	Rating  float64 `json:"rating" binding:"gte=0,lte=5"` // Rating out of 5
}

// ListReviewsHandler returns all reviews
func ListReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviews := []domain.Review{} // Empty slice, not nil: serializes as []
		if err := db.Find(&reviews).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews) // Return the raw list, no envelope
	}
}

// CreateReviewHandler inserts a review (any authenticated user)
func CreateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		review := domain.Review{
			Name:    req.Name,    // Reviewer name
			Details: req.Details, // Review text
			Rating:  req.Rating,  // Rating
		}
		if err := db.Create(&review).Error; err != nil {
			// If creation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"insertedId": review.ID}) // Echo the store result
	}
}
