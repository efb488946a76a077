package service

import (
	"context"

	"rice-shop/internal/model"

	"github.com/google/uuid"
)

// OrderService drives an order from submission to delivery through the
// OTP-gated confirmation flow.
type OrderService interface {
	// Submit creates a pending order, issues an OTP and emails it.
	// langHint is the request-scoped language hint from the HTTP
	// headers, if any.
	Submit(ctx context.Context, req *model.OrderRequest, langHint string) (*model.OrderSubmitResponse, error)

	// Confirm verifies an OTP and finalises the order, notifying the
	// customer and the shop operator.
	Confirm(ctx context.Context, req *model.ConfirmOrderRequest) error

	// ResendOtp invalidates all prior codes for the order's email and
	// issues a fresh one.
	ResendOtp(ctx context.Context, req *model.ResendOtpRequest, langHint string) error

	// UpdateStatus overwrites the order status and sends the delivery
	// notice when the order transitions into delivered.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)

	// GetByID retrieves a single order.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves every product.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create adds a product to the catalogue.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// Update overwrites a product's fields. An empty image in the
	// request keeps the existing one.
	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product and its stored image.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AdminService defines admin identity and account management.
type AdminService interface {
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// ChangePassword rotates the caller's own password after verifying
	// the current one.
	ChangePassword(ctx context.Context, adminID uuid.UUID, req *model.ChangePasswordRequest) error

	// ListUsers retrieves all admin accounts.
	ListUsers(ctx context.Context) ([]model.AdminUser, error)

	// CreateUser adds a new admin account.
	CreateUser(ctx context.Context, req *model.CreateAdminRequest) (*model.AdminUser, error)

	// DeleteUser removes an admin account. Self-deletion and deleting
	// the last remaining admin are rejected.
	DeleteUser(ctx context.Context, callerID, id uuid.UUID) error

	// UpdateUsername renames an admin account.
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error

	// ResetPassword sets a new password for another admin. Resetting
	// one's own password through this path is rejected.
	ResetPassword(ctx context.Context, callerID, id uuid.UUID, password string) error
}

// AnalyticsService aggregates order and catalogue totals for the admin
// dashboard.
type AnalyticsService interface {
	// Summary returns shop-wide totals.
	Summary(ctx context.Context) (*model.AnalyticsSummary, error)

	// Monthly returns confirmed orders for one calendar month. When
	// month or year is zero, all confirmed orders are returned.
	Monthly(ctx context.Context, month, year int) (*model.MonthlyAnalytics, error)
}

// PreferenceService manages per-email language preferences.
type PreferenceService interface {
	// Set stores the preferred language for an email.
	Set(ctx context.Context, req *model.PreferenceRequest) (*model.UserPreference, error)

	// Get returns the stored preference, defaulting to English.
	Get(ctx context.Context, email string) (*model.UserPreference, error)
}
