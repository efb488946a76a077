package handler

import (
	"encoding/json"
	"net/http"

	"rice-shop/internal/model"
	"rice-shop/internal/service"

	"github.com/rs/zerolog"
)

// PreferenceHandler manages per-email language preferences.
type PreferenceHandler struct {
	service service.PreferenceService
	logger  zerolog.Logger
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(service service.PreferenceService, logger zerolog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		service: service,
		logger:  logger.With().Str("handler", "preference").Logger(),
	}
}

// SetLanguage handles POST /api/preferences/language requests.
func (h *PreferenceHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req model.PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	pref, err := h.service.Set(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to save language preference", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, pref)
}

// GetLanguage handles GET /api/preferences/language/{email} requests.
func (h *PreferenceHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required", h.logger)
		return
	}

	pref, err := h.service.Get(r.Context(), email)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve language preference", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, pref)
}
