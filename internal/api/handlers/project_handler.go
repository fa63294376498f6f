package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

var projectMessages = messages{invalid: "Invalid project data", notFound: "Project not found"}

// ProjectHandler handles HTTP requests related to projects.
type ProjectHandler struct {
	service services.ProjectServiceProvider
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service services.ProjectServiceProvider) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// GetAll handles the request to get all projects, newest first.
func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.GetAllProjects(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve projects")
		WriteMessage(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// Get handles the request to get a single project by its ID.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := h.service.GetProjectByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, projectMessages, "Failed to fetch project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Create handles the request to create a new project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ProjectInput
	if !decode(w, r, &input, projectMessages.invalid) {
		return
	}

	project, err := h.service.CreateProject(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, projectMessages, "Failed to create project")
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

// Update handles the request to partially update an existing project.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.ProjectPatch
	if !decode(w, r, &patch, projectMessages.invalid) {
		return
	}

	project, err := h.service.UpdateProject(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err, projectMessages, "Failed to update project")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// Delete handles the request to delete a project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	removed, err := h.service.DeleteProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, projectMessages, "Failed to delete project")
		return
	}
	if !removed {
		WriteMessage(w, http.StatusNotFound, projectMessages.notFound)
		return
	}
	WriteMessage(w, http.StatusOK, "Project deleted")
}
