package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/plotvista/plotvista/internal/entity"
)

const plotColumns = `id, project_id, plot_number, size, price, facing, status, booked_by, category, created_at, updated_at`

type PlotRepository struct {
	db querier
}

func NewPlotRepository(db querier) *PlotRepository {
	return &PlotRepository{db: db}
}

func (r *PlotRepository) Create(ctx context.Context, p *entity.Plot) error {
	query := `
		INSERT INTO plots (id, project_id, plot_number, size, price, facing, status, booked_by, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ProjectID,
		p.PlotNumber,
		p.Size,
		p.Price,
		nullString(p.Facing),
		string(p.Status),
		nullString(p.BookedBy),
		nullString(p.Category),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrPlotNumberTaken
		}
		return err
	}

	return nil
}

func (r *PlotRepository) FindByID(ctx context.Context, id string) (*entity.Plot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+plotColumns+` FROM plots WHERE id = $1`, id)
	return scanPlot(row)
}

func (r *PlotRepository) FindAll(ctx context.Context) ([]*entity.Plot, error) {
	return r.queryPlots(ctx, `SELECT `+plotColumns+` FROM plots ORDER BY plot_number ASC, id`)
}

func (r *PlotRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Plot, error) {
	if len(ids) == 0 {
		return []*entity.Plot{}, nil
	}
	marks, args := inArgs(ids)
	return r.queryPlots(ctx,
		`SELECT `+plotColumns+` FROM plots WHERE id IN (`+marks+`) ORDER BY plot_number ASC, id`,
		args...)
}

func (r *PlotRepository) FindByProjectID(ctx context.Context, projectID string) ([]*entity.Plot, error) {
	return r.queryPlots(ctx,
		`SELECT `+plotColumns+` FROM plots WHERE project_id = $1 ORDER BY plot_number ASC, id`, projectID)
}

func (r *PlotRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Plot, error) {
	return r.queryPlots(ctx,
		`SELECT `+plotColumns+` FROM plots WHERE category = $1 ORDER BY plot_number ASC, id`, category)
}

// Transition is the guarded booking update: it only fires while the plot is
// still Available or Hold, so two bookings racing on one plot cannot both
// win. The loser sees ErrPlotUnavailable.
func (r *PlotRepository) Transition(ctx context.Context, plotID, leadID string, status entity.PlotStatus) error {
	query := `
		UPDATE plots
		SET status = $1, booked_by = $2, updated_at = NOW()
		WHERE id = $3 AND status IN ('Available', 'Hold')
	`

	res, err := r.db.ExecContext(ctx, query, string(status), leadID, plotID)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM plots WHERE id = $1)`, plotID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return entity.ErrNotFound
		}
		return entity.ErrPlotUnavailable
	}

	return nil
}

func (r *PlotRepository) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plots`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PlotRepository) CountByStatus(ctx context.Context, statuses ...entity.PlotStatus) (int, error) {
	marks := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = string(s)
	}

	var n int
	query := `SELECT COUNT(*) FROM plots WHERE status IN (` + strings.Join(marks, ", ") + `)`
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PlotRepository) queryPlots(ctx context.Context, query string, args ...any) ([]*entity.Plot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []*entity.Plot
	for rows.Next() {
		p, err := scanPlot(rows)
		if err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, rows.Err()
}

func scanPlot(row rowScanner) (*entity.Plot, error) {
	var p entity.Plot
	var facing, bookedBy, category sql.NullString

	err := row.Scan(
		&p.ID, &p.ProjectID, &p.PlotNumber, &p.Size, &p.Price,
		&facing, &p.Status, &bookedBy, &category, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}

	p.Facing = facing.String
	p.BookedBy = bookedBy.String
	p.Category = category.String

	return &p, nil
}
