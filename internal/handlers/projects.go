package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"akellar.dev/internal/models"
	"akellar.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, models.ProjectList{Projects: projects})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetCatalog handles GET /projects-data.json
func (h *ProjectHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := h.projectService.Catalog(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, cat)
}
