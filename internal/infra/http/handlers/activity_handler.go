package handlers

import (
	"context"
	"net/http"

	"github.com/plotvista/plotvista/internal/entity"
)

type activityService interface {
	Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}

type ActivityHandler struct {
	Activities activityService
}

func NewActivityHandler(activities activityService) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	logs, err := h.Activities.Recent(r.Context(), 0)
	if err != nil {
		writeError(w, err)
		return
	}
	if logs == nil {
		logs = []*entity.ActivityLog{}
	}

	writeJSON(w, http.StatusOK, logs)
}
