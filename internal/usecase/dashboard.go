package usecase

import (
	"context"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

// DashboardService computes the read-side aggregations for both dashboards.
// Counts and sums only; the independent reads share no state.
type DashboardService struct {
	Store Store
}

func NewDashboardService(store Store) *DashboardService {
	return &DashboardService{Store: store}
}

func (s *DashboardService) AdminStats(ctx context.Context, caller entity.Caller) (*DashboardStats, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("admin dashboard requires the admin role")
	}

	from, to := todayWindow()
	stats := &DashboardStats{}
	var err error

	leads := s.Store.Leads()
	if stats.TotalLeads, err = leads.CountAll(ctx); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.ConvertedLeads, err = leads.CountByStatus(ctx, entity.LeadStatusBooked); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.LostLeads, err = leads.CountByStatus(ctx, entity.LeadStatusLost); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.UnassignedLeads, err = leads.CountUnassigned(ctx); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.TodayFollowUps, err = leads.CountFollowUpsBetween(ctx, "", from, to); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}

	if stats.TotalProjects, err = s.Store.Projects().CountAll(ctx); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}

	plots := s.Store.Plots()
	if stats.TotalPlots, err = plots.CountAll(ctx); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.AvailablePlots, err = plots.CountByStatus(ctx, entity.PlotStatusAvailable); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.BookedPlots, err = plots.CountByStatus(ctx, entity.PlotStatusBooked, entity.PlotStatusSold); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}

	if stats.TotalRevenue, err = s.Store.Payments().SumAmount(ctx); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}

	return stats, nil
}

func (s *DashboardService) SalespersonStats(ctx context.Context, caller entity.Caller) (*SalespersonStats, error) {
	from, to := todayWindow()
	stats := &SalespersonStats{}
	var err error

	leads := s.Store.Leads()
	if stats.AssignedLeads, err = leads.CountByAssignee(ctx, caller.ID); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	if stats.TodayFollowUps, err = leads.CountFollowUpsBetween(ctx, caller.ID, from, to); err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}

	booked, err := leads.FindByAssigneeAndStatus(ctx, caller.ID, entity.LeadStatusBooked)
	if err != nil {
		return nil, storage("failed to compute dashboard stats", err)
	}
	stats.ConvertedLeads = len(booked)

	if len(booked) > 0 {
		leadIDs := collect(booked, func(l *entity.Lead) string { return l.ID })
		if stats.TotalRevenue, err = s.Store.Payments().SumAmountByLeadIDs(ctx, leadIDs); err != nil {
			return nil, storage("failed to compute dashboard stats", err)
		}
	}

	return stats, nil
}

// todayWindow is [startOfDay, endOfDay] in the server's timezone.
func todayWindow() (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)
	return from, to
}
