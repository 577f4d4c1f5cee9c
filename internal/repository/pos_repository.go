package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrStatementNotFound indicates that no POS statement exists for the
// requested month.
var ErrStatementNotFound = errors.New("pos statement not found")

// PosRepo manages the monthly POS statement imports.
type PosRepo struct {
	db *sql.DB
}

// NewPosRepo constructs a PosRepo with the given DB handle.
func NewPosRepo(db *sql.DB) *PosRepo { return &PosRepo{db: db} }

// Upsert stores the totals for a month, replacing any previous import
// of the same month.  The import timestamp is refreshed either way.
func (r *PosRepo) Upsert(ctx context.Context, s *model.PosStatement) error {
	const q = `INSERT INTO pos_statements (month, gross_cents, tx_count, imported_at)
		VALUES (?, ?, ?, UTC_TIMESTAMP())
		ON DUPLICATE KEY UPDATE gross_cents = VALUES(gross_cents),
			tx_count = VALUES(tx_count), imported_at = UTC_TIMESTAMP()`
	if _, err := r.db.ExecContext(ctx, q, s.Month, s.GrossCents, s.TransactionCount); err != nil {
		return err
	}
	fresh, err := r.GetByMonth(ctx, s.Month)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// GetByMonth retrieves the statement for a month ("YYYY-MM"), returning
// ErrStatementNotFound when no import exists.
func (r *PosRepo) GetByMonth(ctx context.Context, month string) (*model.PosStatement, error) {
	var s model.PosStatement
	err := r.db.QueryRowContext(ctx,
		`SELECT id, month, gross_cents, tx_count, imported_at FROM pos_statements WHERE month = ?`,
		month).Scan(&s.ID, &s.Month, &s.GrossCents, &s.TransactionCount, &s.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
