package usecase

import (
	"context"

	"github.com/plotvista/plotvista/internal/entity"
)

// VisibilityService computes the records a caller may read. Admins see
// everything; salespeople see only what is reachable through their assigned
// leads' payments (lead -> payment -> plot -> project). Read-only, every
// listing comes back in a deterministic order.
type VisibilityService struct {
	Store Store
}

func NewVisibilityService(store Store) *VisibilityService {
	return &VisibilityService{Store: store}
}

func (s *VisibilityService) VisibleLeads(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error) {
	if caller.IsAdmin() {
		return s.Store.Leads().FindAll(ctx)
	}
	return s.Store.Leads().FindByAssignee(ctx, caller.ID)
}

func (s *VisibilityService) VisiblePlots(ctx context.Context, caller entity.Caller) ([]*entity.Plot, error) {
	if caller.IsAdmin() {
		return s.Store.Plots().FindAll(ctx)
	}

	plotIDs, err := s.reachablePlotIDs(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(plotIDs) == 0 {
		return []*entity.Plot{}, nil
	}
	return s.Store.Plots().FindByIDs(ctx, plotIDs)
}

func (s *VisibilityService) VisibleProjects(ctx context.Context, caller entity.Caller) ([]*entity.Project, error) {
	if caller.IsAdmin() {
		return s.Store.Projects().FindAll(ctx)
	}

	plotIDs, err := s.reachablePlotIDs(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(plotIDs) == 0 {
		return []*entity.Project{}, nil
	}

	plots, err := s.Store.Plots().FindByIDs(ctx, plotIDs)
	if err != nil {
		return nil, err
	}

	projectIDs := dedupe(collect(plots, func(p *entity.Plot) string { return p.ProjectID }))
	if len(projectIDs) == 0 {
		return []*entity.Project{}, nil
	}
	return s.Store.Projects().FindByIDs(ctx, projectIDs)
}

// reachablePlotIDs walks lead -> payment -> plot for the caller's assigned
// leads. Empty result is a valid answer, not an error.
func (s *VisibilityService) reachablePlotIDs(ctx context.Context, caller entity.Caller) ([]string, error) {
	leads, err := s.Store.Leads().FindByAssignee(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, nil
	}

	leadIDs := collect(leads, func(l *entity.Lead) string { return l.ID })
	payments, err := s.Store.Payments().FindByLeadIDs(ctx, leadIDs)
	if err != nil {
		return nil, err
	}

	return dedupe(collect(payments, func(p *entity.Payment) string { return p.PlotID })), nil
}

func collect[T any](items []T, key func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, key(item))
	}
	return out
}

// dedupe keeps the first occurrence of each id, preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
