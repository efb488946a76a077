package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an administrator account. Password holds a bcrypt hash,
// never the plain text.
type AdminUser struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// ChangePasswordRequest lets an authenticated admin rotate their own
// password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// CreateAdminRequest is the payload for adding a new admin user.
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUsernameRequest renames an admin account.
type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

// ResetPasswordRequest sets a new password for another admin account.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
