package domain

// CartEntry Model
type CartEntry struct {
	ID         uint    `gorm:"primaryKey" json:"id"`       // Primary key, listed in payment cartIds
	Email      string  `gorm:"index;not null" json:"email"` // Owning user's email
	MenuItemID uint    `gorm:"index" json:"menuItemId"`    // Menu item placed in the cart
	Name       string  `json:"name"`                       // Denormalized dish name for cart display
	Price      float64 `json:"price"`                      // Price at the time of adding
	Image      string  `json:"image"`                      // Denormalized image URL
}
