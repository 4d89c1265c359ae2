package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

const leadColumns = `id, name, email, phone, source, status, rating, assigned_to, assigned_by, follow_up_date, notes, created_at, updated_at`

type LeadRepository struct {
	db querier
}

func NewLeadRepository(db querier) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, source, status, rating, assigned_to, assigned_by, follow_up_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Name,
		nullString(l.Email),
		l.Phone,
		string(l.Source),
		string(l.Status),
		string(l.Rating),
		nullString(l.AssignedTo),
		nullString(l.AssignedBy),
		l.FollowUpDate,
		nullString(l.Notes),
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, phone = $3, source = $4, status = $5, rating = $6,
			assigned_to = $7, assigned_by = $8, follow_up_date = $9, notes = $10, updated_at = $11
		WHERE id = $12
	`

	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		nullString(l.Email),
		l.Phone,
		string(l.Source),
		string(l.Status),
		string(l.Rating),
		nullString(l.AssignedTo),
		nullString(l.AssignedBy),
		l.FollowUpDate,
		nullString(l.Notes),
		l.UpdatedAt,
		l.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	return r.queryLeads(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC, id`)
}

func (r *LeadRepository) FindByAssignee(ctx context.Context, userID string) ([]*entity.Lead, error) {
	return r.queryLeads(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE assigned_to = $1 ORDER BY created_at DESC, id`, userID)
}

func (r *LeadRepository) FindByAssigneeAndStatus(ctx context.Context, userID string, status entity.LeadStatus) ([]*entity.Lead, error) {
	return r.queryLeads(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE assigned_to = $1 AND status = $2 ORDER BY created_at DESC, id`,
		userID, string(status))
}

func (r *LeadRepository) FindFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) ([]*entity.Lead, error) {
	if assigneeID == "" {
		return r.queryLeads(ctx,
			`SELECT `+leadColumns+` FROM leads WHERE follow_up_date BETWEEN $1 AND $2 ORDER BY follow_up_date ASC, id`,
			from, to)
	}
	return r.queryLeads(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE assigned_to = $1 AND follow_up_date BETWEEN $2 AND $3 ORDER BY follow_up_date ASC, id`,
		assigneeID, from, to)
}

func (r *LeadRepository) SetStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads`)
}

func (r *LeadRepository) CountByStatus(ctx context.Context, status entity.LeadStatus) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE status = $1`, string(status))
}

func (r *LeadRepository) CountUnassigned(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE assigned_to IS NULL`)
}

func (r *LeadRepository) CountByAssignee(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE assigned_to = $1`, userID)
}

func (r *LeadRepository) CountFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) (int, error) {
	if assigneeID == "" {
		return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE follow_up_date BETWEEN $1 AND $2`, from, to)
	}
	return r.count(ctx,
		`SELECT COUNT(*) FROM leads WHERE assigned_to = $1 AND follow_up_date BETWEEN $2 AND $3`,
		assigneeID, from, to)
}

func (r *LeadRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	var email, assignedTo, assignedBy, notes sql.NullString
	var followUp sql.NullTime

	err := row.Scan(
		&l.ID, &l.Name, &email, &l.Phone, &l.Source, &l.Status, &l.Rating,
		&assignedTo, &assignedBy, &followUp, &notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	l.Email = email.String
	l.AssignedTo = assignedTo.String
	l.AssignedBy = assignedBy.String
	l.Notes = notes.String
	if followUp.Valid {
		l.FollowUpDate = &followUp.Time
	}

	return &l, nil
}
