package domain

// MenuItem Model
type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"` // Primary key, referenced by cart entries and payments
	Name     string  `gorm:"not null" json:"name"` // Dish name
	Category string  `gorm:"index" json:"category"` // Category: salad, pizza, dessert, ...
	Price    float64 `gorm:"not null" json:"price"` // Current price; order stats sum this, not price at purchase
	Recipe   string  `json:"recipe"`                // Recipe description
	Image    string  `json:"image"`                 // Image URL
}
