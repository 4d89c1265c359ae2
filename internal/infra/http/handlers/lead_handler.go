package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/infra/http/middleware"
	"github.com/plotvista/plotvista/internal/usecase"
)

type leadService interface {
	Create(ctx context.Context, caller entity.Caller, input usecase.CreateLeadInput) (*entity.Lead, error)
	Update(ctx context.Context, caller entity.Caller, id string, input usecase.CreateLeadInput) (*entity.Lead, error)
	Delete(ctx context.Context, caller entity.Caller, id string) error
	TodayFollowUps(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error)
}

type leadAssigner interface {
	Execute(ctx context.Context, caller entity.Caller, leadID string, input usecase.AssignLeadInput) (*entity.Lead, error)
}

type leadVisibility interface {
	VisibleLeads(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error)
}

type LeadHandler struct {
	Leads      leadService
	Assign     leadAssigner
	Visibility leadVisibility
}

func NewLeadHandler(leads leadService, assign leadAssigner, visibility leadVisibility) *LeadHandler {
	return &LeadHandler{Leads: leads, Assign: assign, Visibility: visibility}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	leads, err := h.Visibility.VisibleLeads(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) TodayFollowUps(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	leads, err := h.Leads.TodayFollowUps(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.Leads.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.Leads.Update(r.Context(), caller, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.Leads.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "lead deleted")
}

func (h *LeadHandler) AssignLead(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.AssignLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	lead, err := h.Assign.Execute(r.Context(), caller, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadAssignment()
	writeJSON(w, http.StatusOK, lead)
}
