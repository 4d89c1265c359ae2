package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type plotService interface {
	Create(ctx context.Context, caller entity.Caller, input usecase.CreatePlotInput) (*entity.Plot, error)
	ByCategory(ctx context.Context, category string) ([]*entity.Plot, error)
	Stats(ctx context.Context, plotID string) (*usecase.PlotStats, error)
}

type plotVisibility interface {
	VisiblePlots(ctx context.Context, caller entity.Caller) ([]*entity.Plot, error)
}

type PlotHandler struct {
	Plots      plotService
	Visibility plotVisibility
}

func NewPlotHandler(plots plotService, visibility plotVisibility) *PlotHandler {
	return &PlotHandler{Plots: plots, Visibility: visibility}
}

func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	plots, err := h.Visibility.VisiblePlots(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if plots == nil {
		plots = []*entity.Plot{}
	}

	writeJSON(w, http.StatusOK, plots)
}

func (h *PlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreatePlotInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	plot, err := h.Plots.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, plot)
}

func (h *PlotHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	plots, err := h.Plots.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, err)
		return
	}
	if plots == nil {
		plots = []*entity.Plot{}
	}

	writeJSON(w, http.StatusOK, plots)
}

func (h *PlotHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	stats, err := h.Plots.Stats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
