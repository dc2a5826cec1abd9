package domain

// User Model
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`              // Primary key
	Name  string `json:"name"`                              // Display name
	Email string `gorm:"unique;not null" json:"email"`      // Unique email, identity key
	Role  string `gorm:"default:user" json:"role,omitempty"` // Role: user or admin
}
