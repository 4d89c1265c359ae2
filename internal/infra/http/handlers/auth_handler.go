package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/usecase"
)

type loginService interface {
	Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error)
}

type AuthHandler struct {
	Auth loginService
}

func NewAuthHandler(auth loginService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	output, err := h.Auth.Login(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
