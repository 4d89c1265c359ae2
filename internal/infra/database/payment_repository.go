package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/plotvista/plotvista/internal/entity"
)

const paymentColumns = `id, lead_id, plot_id, amount, mode, booking_type, transaction_id, notes, created_at`

type PaymentRepository struct {
	db querier
}

func NewPaymentRepository(db querier) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, lead_id, plot_id, amount, mode, booking_type, transaction_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.LeadID,
		p.PlotID,
		p.Amount,
		string(p.Mode),
		string(p.BookingType),
		nullString(p.TransactionID),
		nullString(p.Notes),
		p.CreatedAt,
	)
	return err
}

func (r *PaymentRepository) FindByLeadIDs(ctx context.Context, leadIDs []string) ([]*entity.Payment, error) {
	if len(leadIDs) == 0 {
		return []*entity.Payment{}, nil
	}
	marks, args := inArgs(leadIDs)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE lead_id IN (`+marks+`) ORDER BY created_at DESC, id`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) SumAmount(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&sum)
	return sum, err
}

func (r *PaymentRepository) SumAmountByLeadIDs(ctx context.Context, leadIDs []string) (int64, error) {
	if len(leadIDs) == 0 {
		return 0, nil
	}
	marks, args := inArgs(leadIDs)

	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE lead_id IN (`+marks+`)`,
		args...).Scan(&sum)
	return sum, err
}

func scanPayment(row rowScanner) (*entity.Payment, error) {
	var p entity.Payment
	var transactionID, notes sql.NullString

	err := row.Scan(
		&p.ID, &p.LeadID, &p.PlotID, &p.Amount, &p.Mode, &p.BookingType,
		&transactionID, &notes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	p.TransactionID = transactionID.String
	p.Notes = notes.String

	return &p, nil
}
