package usecase

import (
	"context"

	"github.com/plotvista/plotvista/internal/entity"
)

const defaultActivityLimit = 20

type ActivityService struct {
	Store Store
}

func NewActivityService(store Store) *ActivityService {
	return &ActivityService{Store: store}
}

// Recent lists the newest audit entries, newest first. A non-positive limit
// falls back to the default of 20.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	activities, err := s.Store.Activities().Recent(ctx, limit)
	if err != nil {
		return nil, storage("failed to fetch activities", err)
	}
	return activities, nil
}
