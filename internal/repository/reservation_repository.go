package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrReservationNotFound indicates that a reservation was not located in
// the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationRepo provides CRUD operations for reservations.  Dates are
// stored in a DATE column and slot times in TIME columns; both are
// formatted back into the "YYYY-MM-DD" / "HH:MM" strings used by the
// model on the way out.  All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = `id, DATE_FORMAT(res_date, '%Y-%m-%d'), TIME_FORMAT(start_time, '%H:%i'),
	duration_min, party_size, guest_name, guest_phone, guest_email, notes, status,
	table_id, event_id, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var res model.Reservation
	var email, notes sql.NullString
	var tableID, eventID sql.NullInt64
	if err := row.Scan(&res.ID, &res.Date, &res.StartTime, &res.DurationMin, &res.PartySize,
		&res.GuestName, &res.GuestPhone, &email, &notes, &res.Status,
		&tableID, &eventID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	if email.Valid {
		v := email.String
		res.GuestEmail = &v
	}
	if notes.Valid {
		v := notes.String
		res.Notes = &v
	}
	if tableID.Valid {
		v := uint64(tableID.Int64)
		res.TableID = &v
	}
	if eventID.Valid {
		v := uint64(eventID.Int64)
		res.EventID = &v
	}
	return &res, nil
}

// Create inserts a new reservation with status NEW and populates the
// generated ID and DB defaults on the given model.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
		(res_date, start_time, duration_min, party_size, guest_name, guest_phone, guest_email, notes, table_id, event_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, res.Date, res.StartTime, res.DurationMin, res.PartySize,
		res.GuestName, res.GuestPhone, nullStr(res.GuestEmail), nullStr(res.Notes),
		nullID(res.TableID), nullID(res.EventID))
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	fresh, err := r.GetByID(ctx, res.ID)
	if err != nil {
		return err
	}
	*res = *fresh
	return nil
}

// GetByID retrieves a reservation by its ID, returning
// ErrReservationNotFound when missing.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	res, err := scanReservation(r.db.QueryRowContext(ctx,
		`SELECT `+reservationCols+` FROM reservations WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// ListByDate returns all reservations for a service date ordered by
// start time.  When status is non-empty only matching rows are
// returned.
func (r *ReservationRepo) ListByDate(ctx context.Context, date, status string) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations WHERE res_date = ?`
	args := []any{date}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

// Update persists the guest and slot fields of an existing reservation.
// Status changes go through UpdateStatus; table assignment through
// AssignTable.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations SET res_date = ?, start_time = ?, duration_min = ?, party_size = ?,
		guest_name = ?, guest_phone = ?, guest_email = ?, notes = ?, event_id = ? WHERE id = ?`
	out, err := r.db.ExecContext(ctx, q, res.Date, res.StartTime, res.DurationMin, res.PartySize,
		res.GuestName, res.GuestPhone, nullStr(res.GuestEmail), nullStr(res.Notes), nullID(res.EventID), res.ID)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, res.ID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatus moves a reservation from one lifecycle status to another.
// The update is guarded by the expected current status so concurrent
// actions cannot both succeed; ErrConflict is returned when the guard
// fails on an existing row.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, from, to string) error {
	out, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ? AND status = ?`, to, id, from)
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

// AssignTable sets (or clears, with nil) the table of a reservation.
func (r *ReservationRepo) AssignTable(ctx context.Context, id uint64, tableID *uint64) error {
	out, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET table_id = ? WHERE id = ?`, nullID(tableID), id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// nullID converts an optional row reference into its sql.NullInt64 form.
func nullID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}
