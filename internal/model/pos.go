package model

import "time"

// PosStatement holds the monthly totals reported by the POS system.
// One row exists per calendar month; importing the same month again
// overwrites the previous figures.  The reconciliation report compares
// these totals against the captured payment transactions of the month.
//
// Fields:
//  Month            – calendar month ("YYYY-MM"), unique.
//  GrossCents       – gross revenue reported by the POS in cents.
//  TransactionCount – number of POS transactions in the month.
//  ImportedAt       – when the statement was last imported.
type PosStatement struct {
	ID               uint64    // pos_statements.id
	Month            string    // pos_statements.month
	GrossCents       uint64    // pos_statements.gross_cents
	TransactionCount uint32    // pos_statements.tx_count
	ImportedAt       time.Time // pos_statements.imported_at
}
