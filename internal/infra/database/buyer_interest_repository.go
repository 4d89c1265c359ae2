package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/plotvista/plotvista/internal/entity"
)

const buyerInterestColumns = `id, plot_id, buyer_name, buyer_contact, buyer_email, offered_price, salesperson_id, salesperson_name, notes, created_at, updated_at`

type BuyerInterestRepository struct {
	db querier
}

func NewBuyerInterestRepository(db querier) *BuyerInterestRepository {
	return &BuyerInterestRepository{db: db}
}

func (r *BuyerInterestRepository) Create(ctx context.Context, b *entity.BuyerInterest) error {
	query := `
		INSERT INTO buyer_interests (id, plot_id, buyer_name, buyer_contact, buyer_email, offered_price, salesperson_id, salesperson_name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.PlotID,
		b.BuyerName,
		b.BuyerContact,
		nullString(b.BuyerEmail),
		b.OfferedPrice,
		b.SalespersonID,
		b.SalespersonName,
		nullString(b.Notes),
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BuyerInterestRepository) FindByPlotID(ctx context.Context, plotID string) ([]*entity.BuyerInterest, error) {
	return r.queryInterests(ctx,
		`SELECT `+buyerInterestColumns+` FROM buyer_interests WHERE plot_id = $1 ORDER BY created_at DESC, id`,
		plotID)
}

func (r *BuyerInterestRepository) FindByPlotIDs(ctx context.Context, plotIDs []string) ([]*entity.BuyerInterest, error) {
	if len(plotIDs) == 0 {
		return []*entity.BuyerInterest{}, nil
	}
	marks, args := inArgs(plotIDs)
	return r.queryInterests(ctx,
		`SELECT `+buyerInterestColumns+` FROM buyer_interests WHERE plot_id IN (`+marks+`) ORDER BY created_at DESC, id`,
		args...)
}

func (r *BuyerInterestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM buyer_interests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *BuyerInterestRepository) queryInterests(ctx context.Context, query string, args ...any) ([]*entity.BuyerInterest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interests []*entity.BuyerInterest
	for rows.Next() {
		b, err := scanBuyerInterest(rows)
		if err != nil {
			return nil, err
		}
		interests = append(interests, b)
	}
	return interests, rows.Err()
}

func scanBuyerInterest(row rowScanner) (*entity.BuyerInterest, error) {
	var b entity.BuyerInterest
	var email, notes sql.NullString

	err := row.Scan(
		&b.ID, &b.PlotID, &b.BuyerName, &b.BuyerContact, &email, &b.OfferedPrice,
		&b.SalespersonID, &b.SalespersonName, &notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	b.BuyerEmail = email.String
	b.Notes = notes.String

	return &b, nil
}
