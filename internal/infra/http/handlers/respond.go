package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/infra/http/middleware"
	"github.com/plotvista/plotvista/internal/usecase"
)

func requireCaller(w http.ResponseWriter, r *http.Request) (entity.Caller, bool) {
	caller, ok := middleware.CallerFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
	}
	return caller, ok
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeMessage(w, statusForCode(domainErr.Code), domainErr.Message)
		return
	}

	log.Printf("ERROR: %v", err)
	writeMessage(w, http.StatusInternalServerError, "internal server error")
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeConflict:
		return http.StatusConflict
	case usecase.CodeForbidden:
		return http.StatusForbidden
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
