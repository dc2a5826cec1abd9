package domain

import (
	"gorm.io/datatypes" // JSON-serialized id lists
)

// PaymentRecord Model. Written exactly once per completed transaction,
// never updated or deleted afterwards.
type PaymentRecord struct {
	ID            uint                      `gorm:"primaryKey" json:"id"`         // Primary key
	Email         string                    `gorm:"index;not null" json:"email"`  // Paying user's email
	Price         float64                   `json:"price"`                        // Total charged amount
	TransactionID string                    `gorm:"not null" json:"transactionId"` // Provider transaction id; not unique, duplicate submissions make duplicate records
	CartIDs       datatypes.JSONSlice[uint] `json:"cartIds"`                      // Cart entries settled by this payment (deleted best-effort after insert)
	MenuItemIDs   datatypes.JSONSlice[uint] `json:"menuItemIds"`                  // Ordered menu item ids, echoed back in payment history
	Items         []PaymentItem             `gorm:"foreignKey:PaymentID" json:"-"` // Same ids expanded one row per item; order stats join over these
	CreatedAt     int64                     `gorm:"autoCreateTime:milli" json:"createdAt"` // Timestamp of creation in milliseconds
}

// PaymentItem is one ordered menu item of a payment. The id list on the
// record is unwound into these rows at write time so the per-category
// aggregation can run as a plain join.
type PaymentItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	PaymentID  uint `gorm:"index" json:"-"` // Foreign key to PaymentRecord
	MenuItemID uint `gorm:"index" json:"-"` // May point at a since-deleted menu item; such rows drop out of stats silently
}
