package handler

import (
	"net/http"

	"github.com/folio/folio-go/internal/middleware"
	"github.com/folio/folio-go/internal/model"
	"github.com/folio/folio-go/internal/service"
)

// ProjectHandler serves the portfolio project endpoints.
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// HandleList handles GET /api/projects.
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListPublished(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Failed to fetch projects")
		return
	}
	writeJSON(w, r, http.StatusOK, projects)
}

// HandleCreate handles POST /api/projects.
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.UserID == "" {
		if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
			req.UserID = p.UserID
		}
	}

	project, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create project")
		return
	}
	writeJSON(w, r, http.StatusCreated, project)
}
