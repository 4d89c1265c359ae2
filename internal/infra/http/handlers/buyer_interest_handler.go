package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type buyerInterestService interface {
	Add(ctx context.Context, caller entity.Caller, input usecase.CreateBuyerInterestInput) (*entity.BuyerInterest, error)
	ListByPlot(ctx context.Context, plotID string) ([]*entity.BuyerInterest, error)
	Delete(ctx context.Context, caller entity.Caller, id string) error
}

type BuyerInterestHandler struct {
	Interests buyerInterestService
}

func NewBuyerInterestHandler(interests buyerInterestService) *BuyerInterestHandler {
	return &BuyerInterestHandler{Interests: interests}
}

func (h *BuyerInterestHandler) ListByPlot(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	interests, err := h.Interests.ListByPlot(r.Context(), chi.URLParam(r, "plotId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if interests == nil {
		interests = []*entity.BuyerInterest{}
	}

	writeJSON(w, http.StatusOK, interests)
}

func (h *BuyerInterestHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateBuyerInterestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	interest, err := h.Interests.Add(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, interest)
}

func (h *BuyerInterestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.Interests.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "buyer interest deleted")
}
