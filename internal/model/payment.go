package model

import "time"

// Payment transaction statuses.  Captured transactions count towards the
// POS reconciliation; a refund flips a captured transaction to REFUNDED
// and records the refund time.  The actual money movement happens in an
// external gateway, this service only administrates the records.
const (
	PaymentAuthorized = "AUTHORIZED"
	PaymentCaptured   = "CAPTURED"
	PaymentRefunded   = "REFUNDED"
	PaymentFailed     = "FAILED"
)

// PaymentTransaction mirrors a row in the `payment_transactions` table.
//
// Fields:
//  ID            – primary key identifier.
//  ReservationID – linked reservation, nil for walk-in payments.
//  TxDate        – transaction date ("YYYY-MM-DD").
//  AmountCents   – amount in euro cents.
//  Method        – payment method (e.g. "CARD", "CASH", "INVOICE").
//  Reference     – external gateway or receipt reference.
//  Status        – transaction status, see constants above.
//  RefundedAt    – when the transaction was refunded (nil otherwise).
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type PaymentTransaction struct {
	ID            uint64     // payment_transactions.id
	ReservationID *uint64    // payment_transactions.reservation_id (nullable)
	TxDate        string     // payment_transactions.tx_date
	AmountCents   uint32     // payment_transactions.amount_cents
	Method        string     // payment_transactions.method
	Reference     string     // payment_transactions.reference
	Status        string     // payment_transactions.status
	RefundedAt    *time.Time // payment_transactions.refunded_at (nullable)
	CreatedAt     time.Time  // payment_transactions.created_at
	UpdatedAt     time.Time  // payment_transactions.updated_at
}
