package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

var skillMessages = messages{invalid: "Invalid skill data", notFound: "Skill not found"}

// SkillHandler handles HTTP requests related to skills.
type SkillHandler struct {
	service services.SkillServiceProvider
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service services.SkillServiceProvider) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.GetAllSkills(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve skills")
		WriteMessage(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	writeJSON(w, http.StatusOK, skills)
}

func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	skill, err := h.service.GetSkillByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, skillMessages, "Failed to fetch skill")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SkillInput
	if !decode(w, r, &input, skillMessages.invalid) {
		return
	}

	skill, err := h.service.CreateSkill(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, skillMessages, "Failed to create skill")
		return
	}
	writeJSON(w, http.StatusCreated, skill)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.SkillPatch
	if !decode(w, r, &patch, skillMessages.invalid) {
		return
	}

	skill, err := h.service.UpdateSkill(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err, skillMessages, "Failed to update skill")
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.DeleteSkill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, skillMessages, "Failed to delete skill")
		return
	}
	if !removed {
		WriteMessage(w, http.StatusNotFound, skillMessages.notFound)
		return
	}
	WriteMessage(w, http.StatusOK, "Skill deleted")
}
