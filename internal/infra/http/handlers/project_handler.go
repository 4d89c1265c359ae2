package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/usecase"
)

type projectService interface {
	Create(ctx context.Context, caller entity.Caller, input usecase.CreateProjectInput) (*entity.Project, error)
	Overview(ctx context.Context) ([]*usecase.ProjectOverview, error)
}

type projectVisibility interface {
	VisibleProjects(ctx context.Context, caller entity.Caller) ([]*entity.Project, error)
}

type ProjectHandler struct {
	Projects   projectService
	Visibility projectVisibility
}

func NewProjectHandler(projects projectService, visibility projectVisibility) *ProjectHandler {
	return &ProjectHandler{Projects: projects, Visibility: visibility}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	projects, err := h.Visibility.VisibleProjects(r.Context(), caller)
	if err != nil {
		writeError(w, err)
		return
	}
	if projects == nil {
		projects = []*entity.Project{}
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var input usecase.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	project, err := h.Projects.Create(r.Context(), caller, input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	overview, err := h.Projects.Overview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if overview == nil {
		overview = []*usecase.ProjectOverview{}
	}

	writeJSON(w, http.StatusOK, overview)
}
