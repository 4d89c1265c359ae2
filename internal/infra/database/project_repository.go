package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/plotvista/plotvista/internal/entity"
)

const projectColumns = `id, name, location, total_plots, description, created_at`

type ProjectRepository struct {
	db querier
}

func NewProjectRepository(db querier) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (id, name, location, total_plots, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Location,
		p.TotalPlots,
		nullString(p.Description),
		p.CreatedAt,
	)
	return err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	return scanProject(row)
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id`)
}

func (r *ProjectRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return []*entity.Project{}, nil
	}
	marks, args := inArgs(ids)
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id IN (`+marks+`) ORDER BY created_at DESC, id`,
		args...)
}

func (r *ProjectRepository) CountAll(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]*entity.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row rowScanner) (*entity.Project, error) {
	var p entity.Project
	var description sql.NullString

	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.TotalPlots, &description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	p.Description = description.String

	return &p, nil
}
