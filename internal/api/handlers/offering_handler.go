package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/portfolio-be/internal/models"
	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

var serviceMessages = messages{invalid: "Invalid service data", notFound: "Service not found"}

// OfferingHandler handles HTTP requests for the services section.
type OfferingHandler struct {
	service services.OfferingServiceProvider
}

// NewOfferingHandler creates a new OfferingHandler.
func NewOfferingHandler(service services.OfferingServiceProvider) *OfferingHandler {
	return &OfferingHandler{service: service}
}

func (h *OfferingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	offerings, err := h.service.GetAllServices(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve services")
		WriteMessage(w, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	writeJSON(w, http.StatusOK, offerings)
}

func (h *OfferingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceInput
	if !decode(w, r, &input, serviceMessages.invalid) {
		return
	}

	offering, err := h.service.CreateService(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, serviceMessages, "Failed to create service")
		return
	}
	writeJSON(w, http.StatusCreated, offering)
}

func (h *OfferingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ServicePatch
	if !decode(w, r, &patch, serviceMessages.invalid) {
		return
	}

	offering, err := h.service.UpdateService(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err, serviceMessages, "Failed to update service")
		return
	}
	writeJSON(w, http.StatusOK, offering)
}

func (h *OfferingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.DeleteService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, serviceMessages, "Failed to delete service")
		return
	}
	if !removed {
		WriteMessage(w, http.StatusNotFound, serviceMessages.notFound)
		return
	}
	WriteMessage(w, http.StatusOK, "Service deleted")
}
