package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrEventNotFound indicates that an event block was not located in the DB.
var ErrEventNotFound = errors.New("event block not found")

// EventRepo manages persistence for event and blackout blocks.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const eventCols = `id, title, DATE_FORMAT(block_date, '%Y-%m-%d'), TIME_FORMAT(start_time, '%H:%i'),
	TIME_FORMAT(end_time, '%H:%i'), area_id, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*model.EventBlock, error) {
	var e model.EventBlock
	var areaID sql.NullInt64
	if err := row.Scan(&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime, &areaID,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if areaID.Valid {
		v := uint64(areaID.Int64)
		e.AreaID = &v
	}
	return &e, nil
}

// Create inserts a new event block and populates the generated ID and
// DB defaults.
func (r *EventRepo) Create(ctx context.Context, e *model.EventBlock) error {
	const q = `INSERT INTO event_blocks (title, block_date, start_time, end_time, area_id) VALUES (?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, e.Title, e.Date, e.StartTime, e.EndTime, nullID(e.AreaID))
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	fresh, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *fresh
	return nil
}

// GetByID retrieves an event block, returning ErrEventNotFound when
// missing.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.EventBlock, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventCols+` FROM event_blocks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	return e, err
}

// ListByDate returns all blocks on a service date ordered by start time.
func (r *EventRepo) ListByDate(ctx context.Context, date string) ([]model.EventBlock, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventCols+` FROM event_blocks WHERE block_date = ? ORDER BY start_time, id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.EventBlock, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Delete removes an event block.  Reservations linked to the event keep
// their event_id reference cleared by the FK's ON DELETE SET NULL.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM event_blocks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrEventNotFound
	}
	return nil
}
