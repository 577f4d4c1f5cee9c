package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/carlsburger/GastroCore-sub002/internal/model"
)

// ErrContentNotFound indicates that a marketing content record was not
// located in the DB.
var ErrContentNotFound = errors.New("marketing content not found")

// MarketingRepo manages persistence for marketing content.
type MarketingRepo struct {
	db *sql.DB
}

// NewMarketingRepo constructs a MarketingRepo with the given DB handle.
func NewMarketingRepo(db *sql.DB) *MarketingRepo { return &MarketingRepo{db: db} }

const contentCols = `id, title, body, channel, status, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (*model.MarketingContent, error) {
	var m model.MarketingContent
	if err := row.Scan(&m.ID, &m.Title, &m.Body, &m.Channel, &m.Status,
		&m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new content record in DRAFT status.
func (r *MarketingRepo) Create(ctx context.Context, m *model.MarketingContent) error {
	const q = `INSERT INTO marketing_contents (title, body, channel) VALUES (?, ?, ?)`
	out, err := r.db.ExecContext(ctx, q, m.Title, m.Body, m.Channel)
	if err != nil {
		return err
	}
	id, err := out.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	fresh, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// GetByID retrieves a content record, returning ErrContentNotFound when
// missing.
func (r *MarketingRepo) GetByID(ctx context.Context, id uint64) (*model.MarketingContent, error) {
	m, err := scanContent(r.db.QueryRowContext(ctx,
		`SELECT `+contentCols+` FROM marketing_contents WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	return m, err
}

// List returns content records newest first, optionally filtered by
// workflow status and channel.
func (r *MarketingRepo) List(ctx context.Context, status, channel string) ([]model.MarketingContent, error) {
	q := `SELECT ` + contentCols + ` FROM marketing_contents WHERE 1=1`
	args := []any{}
	if status != "" {
		q += ` AND status = ?`
		args = append(args, status)
	}
	if channel != "" {
		q += ` AND channel = ?`
		args = append(args, channel)
	}
	q += ` ORDER BY updated_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.MarketingContent, 0)
	for rows.Next() {
		m, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// Update persists the editable fields.  Only DRAFT content is editable;
// the guard returns ErrConflict for content that exists in another
// status.
func (r *MarketingRepo) Update(ctx context.Context, m *model.MarketingContent) error {
	const q = `UPDATE marketing_contents SET title = ?, body = ?, channel = ? WHERE id = ? AND status = ?`
	out, err := r.db.ExecContext(ctx, q, m.Title, m.Body, m.Channel, m.ID, model.ContentDraft)
	if err != nil {
		return err
	}
	if n, _ := out.RowsAffected(); n == 0 {
		cur, err := r.GetByID(ctx, m.ID)
		if err != nil {
			return err
		}
		if cur.Status != model.ContentDraft {
			return ErrConflict
		}
	}
	return nil
}

// UpdateStatus moves content from one workflow status to another.  The
// update is guarded by the expected source status; ErrConflict is
// returned when the guard fails on an existing row.
func (r *MarketingRepo) UpdateStatus(ctx context.Context, id uint64, from, to string) error {
	out, err := r.db.ExecContext(ctx,
		`UPDATE marketing_contents SET status = ? WHERE id = ? AND status = ?`, to, id, from)
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

// Delete removes a content record.  Published or archived content stays
// for the record; handlers only allow deleting drafts.
func (r *MarketingRepo) Delete(ctx context.Context, id uint64) error {
	out, err := r.db.ExecContext(ctx,
		`DELETE FROM marketing_contents WHERE id = ? AND status = ?`, id, model.ContentDraft)
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
