package handler

import (
	"encoding/json"
	"net/http"

	"rice-shop/internal/auth"
	"rice-shop/internal/model"
	"rice-shop/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AdminHandler handles admin identity and account management requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to log in", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ChangePassword handles POST /api/admin/change-password requests for the
// authenticated admin's own account.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	var req model.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.ChangePassword(r.Context(), claims.AdminID, &req); err != nil {
		writeServiceError(w, err, "failed to change password", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// ListUsers handles GET /api/admin/users requests.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to retrieve admin users", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /api/admin/users requests.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to create admin user", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// DeleteUser handles DELETE /api/admin/users/{id} requests.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID format", h.logger)
		return
	}

	if err := h.service.DeleteUser(r.Context(), claims.AdminID, userID); err != nil {
		writeServiceError(w, err, "failed to delete admin user", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Admin deleted"})
}

// UpdateUsername handles PUT /api/admin/users/{id}/username requests.
func (h *AdminHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID format", h.logger)
		return
	}

	var req model.UpdateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateUsername(r.Context(), userID, req.Username); err != nil {
		writeServiceError(w, err, "failed to update username", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Username updated"})
}

// ResetPassword handles PUT /api/admin/users/{id}/password requests.
func (h *AdminHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID format", h.logger)
		return
	}

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.ResetPassword(r.Context(), claims.AdminID, userID, req.NewPassword); err != nil {
		writeServiceError(w, err, "failed to reset password", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password reset"})
}
