package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrAreaNotFound indicates that an area was not located in the DB.
var ErrAreaNotFound = errors.New("area not found")

// AreaRepo manages persistence for seating areas.
type AreaRepo struct {
	db *sql.DB
}

// NewAreaRepo constructs an AreaRepo with the given DB handle.
func NewAreaRepo(db *sql.DB) *AreaRepo { return &AreaRepo{db: db} }

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *AreaRepo) DB() *sql.DB { return r.db }

const areaCols = `id, name, description, capacity, is_active, created_at, updated_at`

// scanArea reads one area row from the given scanner.
func scanArea(row interface{ Scan(...any) error }) (*model.Area, error) {
	var a model.Area
	var desc sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &desc, &a.Capacity, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		d := desc.String
		a.Description = &d
	}
	return &a, nil
}

// Create inserts a new area and populates the generated ID and the
// DB-default fields on the given model.
func (r *AreaRepo) Create(ctx context.Context, a *model.Area) error {
	const q = `INSERT INTO areas (name, description, capacity) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.Name, nullStr(a.Description), a.Capacity)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	fresh, err := r.GetByID(ctx, a.ID)
	if err != nil {
		return err
	}
	*a = *fresh
	return nil
}

// GetByID retrieves an area by its ID.  It returns ErrAreaNotFound when
// no matching row exists.
func (r *AreaRepo) GetByID(ctx context.Context, id uint64) (*model.Area, error) {
	a, err := scanArea(r.db.QueryRowContext(ctx, `SELECT `+areaCols+` FROM areas WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAreaNotFound
	}
	return a, err
}

// List returns all areas ordered by name.  When activeOnly is set,
// retired areas are skipped.
func (r *AreaRepo) List(ctx context.Context, activeOnly bool) ([]model.Area, error) {
	q := `SELECT ` + areaCols + ` FROM areas`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Area, 0)
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// Update persists name, description, capacity and active flag for an
// existing area.  ErrAreaNotFound is returned when the row is missing.
func (r *AreaRepo) Update(ctx context.Context, a *model.Area) error {
	const q = `UPDATE areas SET name = ?, description = ?, capacity = ?, is_active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, nullStr(a.Description), a.Capacity, a.IsActive, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Either missing or unchanged; distinguish via lookup.
		if _, err := r.GetByID(ctx, a.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an area.  Areas that still contain tables cannot be
// deleted; ErrConflict is returned instead so the handler can respond
// with 409.
func (r *AreaRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tables WHERE area_id = ?`, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAreaNotFound
	}
	return nil
}

// nullStr converts an optional string into its sql.NullString form.
func nullStr(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
