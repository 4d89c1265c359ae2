package handlers

import (
	"context"
	"net/http"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type dashboardService interface {
	AdminStats(ctx context.Context, caller entity.Caller) (*usecase.DashboardStats, error)
	SalespersonStats(ctx context.Context, caller entity.Caller) (*usecase.SalespersonStats, error)
}

type DashboardHandler struct {
	Dashboard dashboardService
}

func NewDashboardHandler(dashboard dashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	stats, err := h.Dashboard.AdminStats(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) Salesperson(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	stats, err := h.Dashboard.SalespersonStats(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
