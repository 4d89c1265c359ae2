package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type userService interface {
	Create(ctx context.Context, caller entity.Caller, input usecase.CreateUserInput) (*entity.User, error)
	Delete(ctx context.Context, caller entity.Caller, id string) error
	Salespersons(ctx context.Context, caller entity.Caller) ([]*entity.User, error)
}

type UserHandler struct {
	Users userService
}

func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := h.Users.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "user deleted")
}

func (h *UserHandler) Salespersons(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	users, err := h.Users.Salespersons(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []*entity.User{}
	}

	writeJSON(w, http.StatusOK, users)
}
