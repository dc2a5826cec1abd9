package domain

// Review Model
type Review struct {
	ID      uint    `gorm:"primaryKey" json:"id"` // Primary key
	Name    string  `json:"name"`                 // Reviewer name
	Details string  `json:"details"`              // Review text
	Rating  float64 `json:"rating"`               // Rating out of 5
}
