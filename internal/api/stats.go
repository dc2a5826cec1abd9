package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"bistro_backend/internal/analytics" // Aggregation queries
	"bistro_backend/internal/utils"     // Cache helper functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// AdminStatsHandler returns the dashboard counters and revenue rollup
// (admin only, cached)
func AdminStatsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached analytics.AdminStats
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, utils.AdminStatsCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached stats
			return
		}
		stats, err := analytics.ComputeAdminStats(c.Request.Context(), db) // Counters plus revenue
		if err != nil {
			// If aggregation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		// Cache the stats for future requests
		_ = utils.SetCache(ctx, rdb, utils.AdminStatsCacheKey, stats, utils.CacheTTL)
		c.JSON(http.StatusOK, stats) // Return the stats
	}
}

// OrderStatsHandler returns per-category order stats (admin only, cached).
// Row order is unspecified, consumers must not rely on it.
func OrderStatsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached []analytics.CategoryStat
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, utils.OrderStatsCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached stats
			return
		}
		stats, err := analytics.ComputeOrderStats(c.Request.Context(), db) // Join and group
		if err != nil {
			// If aggregation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}
		// Cache the stats for future requests
		_ = utils.SetCache(ctx, rdb, utils.OrderStatsCacheKey, stats, utils.CacheTTL)
		c.JSON(http.StatusOK, stats) // Return the stats
	}
}
