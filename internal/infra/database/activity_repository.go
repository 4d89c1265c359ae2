package database

import (
	"context"
	"database/sql"

	"github.com/plotvista/plotvista/internal/entity"
)

type ActivityRepository struct {
	db querier
}

func NewActivityRepository(db querier) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Append(ctx context.Context, a *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, user_name, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.UserName,
		a.Action,
		a.EntityType,
		a.EntityID,
		nullString(a.Details),
		a.CreatedAt,
	)
	return err
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, user_name, action, entity_type, entity_id, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*entity.ActivityLog
	for rows.Next() {
		var a entity.ActivityLog
		var details sql.NullString
		err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &a.Action, &a.EntityType, &a.EntityID, &details, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		a.Details = details.String
		logs = append(logs, &a)
	}
	return logs, rows.Err()
}
