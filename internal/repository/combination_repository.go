package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrCombinationNotFound indicates that a table combination was not
// located in the DB.
var ErrCombinationNotFound = errors.New("combination not found")

// CombinationRepo manages persistence for table combinations and their
// member tables.  Members live in the combination_tables join table and
// are written together with the combination inside one transaction.
type CombinationRepo struct {
	db *sql.DB
}

// NewCombinationRepo returns a new CombinationRepo bound to the given
// database.
func NewCombinationRepo(db *sql.DB) *CombinationRepo { return &CombinationRepo{db: db} }

// Create inserts a combination and its member rows atomically.  The
// generated ID is populated on the model.  Validation of the member set
// (area/sub-area consistency, combinable flags) happens in the booking
// package before this is called.
func (r *CombinationRepo) Create(ctx context.Context, c *model.TableCombination) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO table_combinations (combo_date, start_time, end_time, total_capacity) VALUES (?, ?, ?, ?)`
	out, err := tx.ExecContext(ctx, q, c.Date, c.StartTime, c.EndTime, c.TotalCapacity)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	// Bulk insert the members in a single statement.
	query := `INSERT INTO combination_tables (combination_id, table_id) VALUES `
	args := make([]any, 0, len(c.TableIDs)*2)
	for i, tid := range c.TableIDs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, c.ID, tid)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

const comboCols = `id, DATE_FORMAT(combo_date, '%Y-%m-%d'), TIME_FORMAT(start_time, '%H:%i'),
	TIME_FORMAT(end_time, '%H:%i'), total_capacity, created_at`

func scanCombo(row interface{ Scan(...any) error }) (*model.TableCombination, error) {
	var c model.TableCombination
	if err := row.Scan(&c.ID, &c.Date, &c.StartTime, &c.EndTime, &c.TotalCapacity, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID retrieves a combination with its member table IDs, returning
// ErrCombinationNotFound when missing.
func (r *CombinationRepo) GetByID(ctx context.Context, id uint64) (*model.TableCombination, error) {
	c, err := scanCombo(r.db.QueryRowContext(ctx,
		`SELECT `+comboCols+` FROM table_combinations WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCombinationNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(ctx, []*model.TableCombination{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByDate returns all combinations for a service date, members
// included, ordered by start time.
func (r *CombinationRepo) ListByDate(ctx context.Context, date string) ([]model.TableCombination, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+comboCols+` FROM table_combinations WHERE combo_date = ? ORDER BY start_time, id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.TableCombination, 0)
	for rows.Next() {
		c, err := scanCombo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	refs := make([]*model.TableCombination, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.loadMembers(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// loadMembers populates TableIDs for all given combinations in a single
// query.
func (r *CombinationRepo) loadMembers(ctx context.Context, combos []*model.TableCombination) error {
	index := make(map[uint64]*model.TableCombination, len(combos))
	ids := make([]any, 0, len(combos))
	placeholders := make([]string, 0, len(combos))
	for _, c := range combos {
		c.TableIDs = []uint64{}
		index[c.ID] = c
		ids = append(ids, c.ID)
		placeholders = append(placeholders, "?")
	}
	q := `SELECT combination_id, table_id FROM combination_tables
	      WHERE combination_id IN (` + strings.Join(placeholders, ",") + `) ORDER BY table_id`
	rows, err := r.db.QueryContext(ctx, q, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cid, tid uint64
		if err := rows.Scan(&cid, &tid); err != nil {
			return err
		}
		if c, ok := index[cid]; ok {
			c.TableIDs = append(c.TableIDs, tid)
		}
	}
	return rows.Err()
}

// Delete removes a combination and its member rows (cascaded by FK).
func (r *CombinationRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM table_combinations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrCombinationNotFound
	}
	return nil
}
