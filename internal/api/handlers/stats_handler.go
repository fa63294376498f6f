package handlers

import (
	"net/http"

	"github.com/isdelr/portfolio-be/internal/services"
	"github.com/rs/zerolog/log"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	service services.StatsServiceProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsServiceProvider) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute stats")
		WriteMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
