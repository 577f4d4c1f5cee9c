package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrStaffNotFound indicates that a staff member was not located in the DB.
var ErrStaffNotFound = errors.New("staff member not found")

// StaffRepo manages persistence for employee records.  The HR columns
// hold ciphertext produced by utils.FieldCipher; this layer never sees
// plaintext HR data.
type StaffRepo struct {
	db *sql.DB
}

// NewStaffRepo constructs a StaffRepo with the given DB handle.
func NewStaffRepo(db *sql.DB) *StaffRepo { return &StaffRepo{db: db} }

const staffCols = `id, name, role, email, phone, salary_enc, iban_enc, social_ins_enc, address_enc,
	pin_hash, is_active, created_at, updated_at`

func scanStaff(row interface{ Scan(...any) error }) (*model.StaffMember, error) {
	var s model.StaffMember
	var phone sql.NullString
	if err := row.Scan(&s.ID, &s.Name, &s.Role, &s.Email, &phone, &s.SalaryEnc, &s.IBANEnc,
		&s.SocialInsEnc, &s.AddressEnc, &s.PINHash, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if phone.Valid {
		v := phone.String
		s.Phone = &v
	}
	return &s, nil
}

// Create inserts a new staff member and populates the generated ID and
// DB defaults on the given model.
func (r *StaffRepo) Create(ctx context.Context, s *model.StaffMember) error {
	const q = `INSERT INTO staff_members
		(name, role, email, phone, salary_enc, iban_enc, social_ins_enc, address_enc, pin_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, s.Name, s.Role, s.Email, nullStr(s.Phone),
		s.SalaryEnc, s.IBANEnc, s.SocialInsEnc, s.AddressEnc, s.PINHash)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	fresh, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// GetByID retrieves a staff member, returning ErrStaffNotFound when
// missing.
func (r *StaffRepo) GetByID(ctx context.Context, id uint64) (*model.StaffMember, error) {
	s, err := scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffCols+` FROM staff_members WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	return s, err
}

// List returns staff members ordered by name.  When activeOnly is set,
// former employees are skipped.
func (r *StaffRepo) List(ctx context.Context, activeOnly bool) ([]model.StaffMember, error) {
	q := `SELECT ` + staffCols + ` FROM staff_members`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.StaffMember, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// Update persists all mutable fields including the encrypted HR columns
// and the PIN hash.
func (r *StaffRepo) Update(ctx context.Context, s *model.StaffMember) error {
	const q = `UPDATE staff_members SET name = ?, role = ?, email = ?, phone = ?,
		salary_enc = ?, iban_enc = ?, social_ins_enc = ?, address_enc = ?, pin_hash = ?, is_active = ?
		WHERE id = ?`
	out, err := r.db.ExecContext(ctx, q, s.Name, s.Role, s.Email, nullStr(s.Phone),
		s.SalaryEnc, s.IBANEnc, s.SocialInsEnc, s.AddressEnc, s.PINHash, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a staff record entirely.  Payroll history normally
// calls for deactivation instead; handlers deactivate via Update and
// reserve Delete for records created in error.
func (r *StaffRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx, `DELETE FROM staff_members WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		return ErrStaffNotFound
	}
	return nil
}
