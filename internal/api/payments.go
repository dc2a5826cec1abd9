package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes

	"bistro_backend/internal/domain"     // Importing domain models
	"bistro_backend/internal/middleware" // Context keys
	"bistro_backend/internal/payment"    // Intent client and recorder
	"bistro_backend/internal/utils"      // Cache helper functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/datatypes"            // JSON-serialized id lists
	"gorm.io/gorm"                 // GORM ORM library
)

// IntentRequest asks for a provider payment intent over an amount
type IntentRequest struct {
	Price float64 `json:"price" binding:"required"` // Amount to charge; positivity is the provider's call
}

// PaymentRequest is the completed-payment payload
type PaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`   // Paying user's email
	Price         float64 `json:"price" binding:"required,gt=0"`    // Total charged amount
	TransactionID string  `json:"transactionId" binding:"required"` // Provider transaction id
	CartIDs       []uint  `json:"cartIds"`                          // Cart entries settled by this payment
	MenuItemIDs   []uint  `json:"menuItemIds"`                      // Ordered menu item ids
}

// CreatePaymentIntentHandler requests a payment intent and returns the
// client secret. A pure provider handshake, nothing is persisted.
func CreatePaymentIntentHandler(ic payment.IntentClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req IntentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		secret, err := ic.CreateIntent(c.Request.Context(), req.Price) // Provider handshake
		if err != nil {
			if errors.Is(err, payment.ErrProvider) {
				// Provider rejected the amount, return bad request
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			// Anything else is a server-side failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret}) // Opaque secret for the frontend
	}
}

// RecordPaymentHandler persists a completed payment through the recorder
// and reports the insert and cart-delete outcomes. The confirmation mail
// runs in the background and is not part of the response.
func RecordPaymentHandler(rec *payment.Recorder, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		record := domain.PaymentRecord{
			Email:         req.Email,                                     // Paying user
			Price:         req.Price,                                     // Charged amount
			TransactionID: req.TransactionID,                             // Provider transaction id
			CartIDs:       datatypes.NewJSONSlice(req.CartIDs),           // Settled cart entries
			MenuItemIDs:   datatypes.NewJSONSlice(req.MenuItemIDs),       // Ordered menu items
		}
		result, err := rec.Record(c.Request.Context(), &record) // Persist, reconcile, notify
		if err != nil {
			// The insert is the authoritative step; its failure fails the request
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}
		// New orders change the dashboard numbers; drop the cached stats
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, utils.AdminStatsCacheKey)
		_ = utils.DeleteCache(ctx, rdb, utils.OrderStatsCacheKey)
		// Echo both synchronous store results
		c.JSON(http.StatusOK, gin.H{
			"paymentResult": gin.H{"insertedId": result.InsertedID},   // Insert outcome
			"deleteResult":  gin.H{"deletedCount": result.DeletedCount}, // Reconciliation outcome
		})
	}
}

// ListPaymentsHandler returns the caller's payment history. Ownership
// rule: the email parameter must match the token's email, role irrelevant.
func ListPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Requested history owner
		// A caller may only read their own payment history
		if email != c.GetString(middleware.ContextEmailKey) {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		records := []domain.PaymentRecord{} // Empty slice, not nil: serializes as []
		if err := db.Where("email = ?", email).Find(&records).Error; err != nil {
			// If fetching fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, records) // Return the raw list, no envelope
	}
}
