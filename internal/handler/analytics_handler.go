package handler

import (
	"net/http"
	"strconv"

	"rice-shop/internal/service"

	"github.com/rs/zerolog"
)

// AnalyticsHandler serves admin dashboard aggregates.
type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service service.AnalyticsService, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger.With().Str("handler", "analytics").Logger(),
	}
}

// Summary handles GET /api/analytics requests.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to compute analytics", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Monthly handles GET /api/analytics/monthly?month=M&year=Y requests.
// Month is 1-12; omitting either parameter returns all confirmed orders.
func (h *AnalyticsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	month, err := parseQueryInt(r, "month")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month", h.logger)
		return
	}
	if month < 0 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month", h.logger)
		return
	}

	year, err := parseQueryInt(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year", h.logger)
		return
	}

	monthly, err := h.service.Monthly(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err, "failed to compute monthly analytics", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, monthly)
}

// parseQueryInt reads an optional integer query parameter, returning zero
// when absent.
func parseQueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
