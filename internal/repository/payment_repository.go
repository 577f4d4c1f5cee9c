package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrPaymentNotFound indicates that a payment transaction was not
// located in the DB.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo administrates payment transaction records.  The money
// itself moves in an external gateway; this layer only tracks what the
// gateway reported and which transactions were refunded from the back
// office.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo with the given DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentCols = `id, reservation_id, DATE_FORMAT(tx_date, '%Y-%m-%d'), amount_cents, method,
	reference, status, refunded_at, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*model.PaymentTransaction, error) {
	var p model.PaymentTransaction
	var resID sql.NullInt64
	var refundedAt sql.NullTime
	if err := row.Scan(&p.ID, &resID, &p.TxDate, &p.AmountCents, &p.Method, &p.Reference,
		&p.Status, &refundedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if resID.Valid {
		v := uint64(resID.Int64)
		p.ReservationID = &v
	}
	if refundedAt.Valid {
		t := refundedAt.Time
		p.RefundedAt = &t
	}
	return &p, nil
}

// Create inserts a new payment transaction record.
func (r *PaymentRepo) Create(ctx context.Context, p *model.PaymentTransaction) error {
	const q = `INSERT INTO payment_transactions (reservation_id, tx_date, amount_cents, method, reference, status)
		VALUES (?, ?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, nullID(p.ReservationID), p.TxDate, p.AmountCents,
		p.Method, p.Reference, p.Status)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	fresh, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *fresh
	return nil
}

// GetByID retrieves a payment transaction, returning ErrPaymentNotFound
// when missing.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.PaymentTransaction, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentCols+` FROM payment_transactions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

// List returns transactions ordered newest first.  All filters are
// optional: from/to bound the transaction date ("YYYY-MM-DD",
// inclusive) and status restricts to one lifecycle state.
func (r *PaymentRepo) List(ctx context.Context, from, to, status string) ([]model.PaymentTransaction, error) {
	q := `SELECT ` + paymentCols + ` FROM payment_transactions WHERE 1=1`
	args := []any{}
	if from != "" {
		q += ` AND tx_date >= ?`
		args = append(args, from)
	}
	if to != "" {
		q += ` AND tx_date <= ?`
		args = append(args, to)
	}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY tx_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.PaymentTransaction, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// MarkRefunded flips a captured transaction to REFUNDED and records the
// refund time.  Only CAPTURED transactions can be refunded; the guard
// in the WHERE clause makes the action idempotence-safe under
// concurrent clicks.  ErrConflict is returned when the transaction
// exists but is not refundable.
func (r *PaymentRepo) MarkRefunded(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx,
		`UPDATE payment_transactions SET status = ?, refunded_at = UTC_TIMESTAMP() WHERE id = ? AND status = ?`,
		model.PaymentRefunded, id, model.PaymentCaptured)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}

// MonthlyTotals aggregates the transactions of a calendar month
// ("YYYY-MM") for the POS reconciliation: the captured gross, the
// refunded gross and the number of captured transactions.
func (r *PaymentRepo) MonthlyTotals(ctx context.Context, month string) (captured, refunded uint64, count uint32, err error) {
	const q = `SELECT
		COALESCE(SUM(CASE WHEN status = ? THEN amount_cents ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = ? THEN amount_cents ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM payment_transactions
		WHERE DATE_FORMAT(tx_date, '%Y-%m') = ?`
	err = r.db.QueryRowContext(ctx, q, model.PaymentCaptured, model.PaymentRefunded,
		model.PaymentCaptured, month).Scan(&captured, &refunded, &count)
	return
}
