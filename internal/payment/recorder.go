package payment

import (
	"context" // Context for store operations
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping
	"time"    // Timestamps for logging

	"bistro_backend/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ErrPersistence marks a failed payment-record insert. This is the only
// fatal failure in the recording flow.
var ErrPersistence = errors.New("payment record not persisted")

// Notifier dispatches the order-confirmation message for a recorded
// payment. Implemented by the mailgun sender; stubbed in tests.
type Notifier interface {
	SendPaymentConfirmation(ctx context.Context, to, transactionID string) error
}

// Result reports the two synchronous steps of recording a payment. The
// confirmation mail is fire-and-forget and never reported here.
type Result struct {
	InsertedID   uint  `json:"insertedId"`   // Primary key of the new payment record
	DeletedCount int64 `json:"deletedCount"` // Cart entries removed by reconciliation
}

// Recorder persists completed payments, reconciles the cart and kicks off
// the confirmation mail
type Recorder struct {
	db       *gorm.DB // Persistent store handle
	notifier Notifier // Confirmation mail sink, may be nil
}

// NewRecorder wires a recorder around injected service handles
func NewRecorder(db *gorm.DB, notifier Notifier) *Recorder {
	return &Recorder{db: db, notifier: notifier}
}

// Record runs the completed-payment flow: persist the record, then delete
// the settled cart entries, then dispatch the confirmation mail. Ordering
// is deliberate: the record is written first so it can never be lost to a
// later failure. The cart delete is best-effort and the mail is
// fire-and-forget; only the insert can fail the call. No transaction spans
// the insert/delete pair, orphaned cart entries are tolerated over a lost
// payment record.
func (r *Recorder) Record(ctx context.Context, rec *domain.PaymentRecord) (Result, error) {
	// Unwind the menu item ids into one row per item for the stats join
	rec.Items = make([]domain.PaymentItem, 0, len(rec.MenuItemIDs))
	for _, menuItemID := range rec.MenuItemIDs {
		rec.Items = append(rec.Items, domain.PaymentItem{MenuItemID: menuItemID})
	}
	// Authoritative step: persist the record and its item rows
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"email":          rec.Email,         // Paying user
			"transaction_id": rec.TransactionID, // Provider transaction id
			"error":          err.Error(),       // Error message
		}).Error("Payment insert failed") // Log insert failure
		return Result{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	// Best-effort reconciliation: drop the cart entries this payment settled
	var deleted int64
	if len(rec.CartIDs) > 0 {
		res := r.db.WithContext(ctx).Delete(&domain.CartEntry{}, []uint(rec.CartIDs)) // Batch delete by id set
		if res.Error != nil {
			// Swallowed: an orphaned cart entry is recoverable, a lost payment is not
			logrus.WithFields(logrus.Fields{
				"payment_id": rec.ID,           // New payment record
				"cart_ids":   []uint(rec.CartIDs), // Entries that should have gone
				"error":      res.Error.Error(),
			}).Error("Cart reconciliation failed")
		} else {
			deleted = res.RowsAffected // Entries actually removed
		}
	}
	// Fire-and-forget: the confirmation mail never blocks or fails the caller
	if r.notifier != nil {
		go r.notify(rec.Email, rec.TransactionID)
	}
	// Log the recorded payment
	logrus.WithFields(logrus.Fields{
		"payment_id":     rec.ID,                          // New payment record
		"email":          rec.Email,                       // Paying user
		"amount":         rec.Price,                       // Charged amount
		"deleted_carts":  deleted,                         // Reconciled cart entries
		"transaction_id": rec.TransactionID,               // Provider transaction id
		"timestamp":      time.Now().Format(time.RFC3339), // Current timestamp
	}).Info("Payment recorded") // Log recording success
	return Result{InsertedID: rec.ID, DeletedCount: deleted}, nil
}

// notify runs on its own goroutine; the outcome is logged, never surfaced
func (r *Recorder) notify(email, transactionID string) {
	if err := r.notifier.SendPaymentConfirmation(context.Background(), email, transactionID); err != nil {
		logrus.WithFields(logrus.Fields{
			"email":          email,         // Recipient
			"transaction_id": transactionID, // Provider transaction id
			"error":          err.Error(),   // Error message
		}).Error("Payment confirmation mail failed") // Logged only, never retried
		return
	}
	logrus.WithFields(logrus.Fields{
		"email":          email,         // Recipient
		"transaction_id": transactionID, // Provider transaction id
	}).Info("Payment confirmation mail sent") // Log mail success
}
