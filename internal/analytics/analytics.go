package analytics

import (
	"context" // Context for store reads

	"bistro_backend/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic for money
	"gorm.io/gorm"                  // GORM ORM library
)

// AdminStats is the admin dashboard rollup
type AdminStats struct {
	Users     int64   `json:"users"`     // Total registered users
	MenuItems int64   `json:"menuItems"` // Total menu items
	Orders    int64   `json:"orders"`    // Total payment records
	Revenue   float64 `json:"revenue"`   // All-time revenue, rounded to 2 decimals
}

// CategoryStat is one row of the per-category order stats
type CategoryStat struct {
	Category string  `json:"category"` // Menu category
	Quantity int64   `json:"quantity"` // Ordered items in the category
	Revenue  float64 `json:"revenue"`  // Sum of current menu prices for those items
}

// ComputeAdminStats returns the dashboard counters plus the revenue rollup
func ComputeAdminStats(ctx context.Context, db *gorm.DB) (AdminStats, error) {
	var stats AdminStats
	// Independent fast counts, not tied to one snapshot
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&stats.Users).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.WithContext(ctx).Model(&domain.MenuItem{}).Count(&stats.MenuItems).Error; err != nil {
		return AdminStats{}, err
	}
	if err := db.WithContext(ctx).Model(&domain.PaymentRecord{}).Count(&stats.Orders).Error; err != nil {
		return AdminStats{}, err
	}
	revenue, err := Revenue(ctx, db) // Revenue rollup over all payment records
	if err != nil {
		return AdminStats{}, err
	}
	stats.Revenue = revenue
	return stats, nil
}

// Revenue sums the price of every payment record, rounded to 2 decimal
// places. Returns 0 when no records exist. Prices are accumulated as
// decimals rather than SQL-summed doubles so 10.005 + 5.00 rounds to 15.01
// instead of drifting to 15.00.
func Revenue(ctx context.Context, db *gorm.DB) (float64, error) {
	var prices []float64 // Per-record amounts
	if err := db.WithContext(ctx).Model(&domain.PaymentRecord{}).Pluck("price", &prices).Error; err != nil {
		return 0, err
	}
	total := decimal.Zero // Exact accumulator
	for _, p := range prices {
		total = total.Add(decimal.NewFromFloat(p)) // Shortest decimal form of each stored price
	}
	return total.Round(2).InexactFloat64(), nil // Half-away-from-zero to 2 places
}

// ComputeOrderStats groups every ordered item by its menu category. The
// payment_items rows (one per menu item id on a payment) are joined against
// the current menu; ids that no longer resolve to a menu item drop out of
// the result silently. Revenue per category sums the item's current price,
// not the price at purchase time. Row order is whatever the store returns.
func ComputeOrderStats(ctx context.Context, db *gorm.DB) ([]CategoryStat, error) {
	stats := []CategoryStat{} // Empty slice, not nil: the endpoint returns [] with no orders
	err := db.WithContext(ctx).
		Table("payment_items").
		Select("menu_items.category AS category, COUNT(*) AS quantity, SUM(menu_items.price) AS revenue").
		Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id"). // Inner join drops unresolvable ids
		Group("menu_items.category").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
