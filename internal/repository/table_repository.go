package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrTableNotFound indicates that a table was not located in the DB.
var ErrTableNotFound = errors.New("table not found")

// ErrTableNumberTaken indicates that another table already carries the
// requested number.
var ErrTableNumberTaken = errors.New("table number already in use")

// TableRepo manages persistence for the physical tables of the floor
// plan.  Table numbers are unique across the whole house.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo with the given DB handle.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

const tableCols = `id, number, area_id, sub_area, seat_min, seat_max, combinable, is_active, created_at, updated_at`

func scanTable(row interface{ Scan(...any) error }) (*model.Table, error) {
	var t model.Table
	if err := row.Scan(&t.ID, &t.Number, &t.AreaID, &t.SubArea, &t.SeatMin, &t.SeatMax,
		&t.Combinable, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// numberTaken checks whether a table number is used by a row other than
// excludeID (pass 0 when creating).
func (r *TableRepo) numberTaken(ctx context.Context, number uint32, excludeID uint64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tables WHERE number = ? AND id <> ?`, number, excludeID).Scan(&n)
	return n > 0, err
}

// Create inserts a new table.  ErrTableNumberTaken is returned when the
// number is already assigned on the floor plan.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	if taken, err := r.numberTaken(ctx, t.Number, 0); err != nil {
		return err
	} else if taken {
		return ErrTableNumberTaken
	}
	const q = `INSERT INTO tables (number, area_id, sub_area, seat_min, seat_max, combinable) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Number, t.AreaID, t.SubArea, t.SeatMin, t.SeatMax, t.Combinable)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	fresh, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = *fresh
	return nil
}

// GetByID retrieves a table by its ID, returning ErrTableNotFound when
// missing.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	t, err := scanTable(r.db.QueryRowContext(ctx, `SELECT `+tableCols+` FROM tables WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return t, err
}

// List returns the floor plan ordered by table number.  areaID filters
// to a single area when non-nil; activeOnly skips retired tables.
func (r *TableRepo) List(ctx context.Context, areaID *uint64, activeOnly bool) ([]model.Table, error) {
	q := `SELECT ` + tableCols + ` FROM tables WHERE 1=1`
	args := []any{}
	if areaID != nil {
		q += ` AND area_id = ?`
		args = append(args, *areaID)
	}
	if activeOnly {
		q += ` AND is_active = 1`
	}
	q += ` ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// Update persists all mutable fields of a table.  The number uniqueness
// check excludes the table itself so re-saving without changes works.
func (r *TableRepo) Update(ctx context.Context, t *model.Table) error {
	if taken, err := r.numberTaken(ctx, t.Number, t.ID); err != nil {
		return err
	} else if taken {
		return ErrTableNumberTaken
	}
	const q = `UPDATE tables SET number = ?, area_id = ?, sub_area = ?, seat_min = ?, seat_max = ?, combinable = ?, is_active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, t.Number, t.AreaID, t.SubArea, t.SeatMin, t.SeatMax, t.Combinable, t.IsActive, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, t.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a table from the floor plan.  Tables referenced by
// reservations or combinations are protected; ErrConflict is returned
// so the handler can respond with 409.
func (r *TableRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM reservations WHERE table_id = ?) +
		        (SELECT COUNT(*) FROM combination_tables WHERE table_id = ?)`, id, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM tables WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTableNotFound
	}
	return nil
}
