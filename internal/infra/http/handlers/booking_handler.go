package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/infra/http/middleware"
	"github.com/plotvista/plotvista/internal/usecase"
)

type bookingUseCase interface {
	Execute(ctx context.Context, caller entity.Caller, input usecase.CreateBookingInput) (*entity.Payment, error)
}

type BookingHandler struct {
	CreateBooking bookingUseCase
}

func NewBookingHandler(createBooking bookingUseCase) *BookingHandler {
	return &BookingHandler{CreateBooking: createBooking}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	payment, err := h.CreateBooking.Execute(r.Context(), caller, input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == usecase.CodeConflict {
			middleware.RecordBookingConflict()
		}
		writeError(w, err)
		return
	}

	middleware.RecordBooking(string(payment.BookingType))
	writeJSON(w, http.StatusCreated, payment)
}
