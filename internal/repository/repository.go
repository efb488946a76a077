package repository

import (
	"context"

	"rice-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetAll retrieves every product, newest first.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Create inserts a new product. A duplicate SKU yields
	// model.ErrDuplicateSKU.
	Create(ctx context.Context, product *model.Product) error

	// Update overwrites a product's mutable fields. A duplicate SKU
	// yields model.ErrDuplicateSKU.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of catalogue entries.
	Count(ctx context.Context) (int, error)
}

// OrderRepository defines the interface for order data access. Writes
// that belong to a multi-step lifecycle transition take an explicit
// transaction so the caller controls atomicity.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// GetByID retrieves an order by its ID, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// SetConfirmed marks an order confirmed within the provided
	// transaction.
	SetConfirmed(ctx context.Context, tx pgx.Tx, id uuid.UUID) error

	// UpdateStatus unconditionally overwrites an order's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}

// OtpRepository defines the interface for one-time password storage.
type OtpRepository interface {
	// Create inserts a new OTP row within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, otp *model.Otp) error

	// FindByEmailAndCode retrieves the OTP row matching the exact
	// (email, code) pair, or nil when absent. Expiry is not checked
	// here; callers decide what "valid" means.
	FindByEmailAndCode(ctx context.Context, email, code string) (*model.Otp, error)

	// Delete removes a single OTP row within the provided transaction.
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error

	// DeleteByEmail removes every OTP row for an email within the
	// provided transaction.
	DeleteByEmail(ctx context.Context, tx pgx.Tx, email string) error
}

// AdminRepository defines the interface for admin account storage.
type AdminRepository interface {
	// GetByUsername retrieves an admin by username, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)

	// GetByID retrieves an admin by ID, or nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.AdminUser, error)

	// List retrieves all admin accounts without password hashes.
	List(ctx context.Context) ([]model.AdminUser, error)

	// Create inserts a new admin. A duplicate username yields
	// model.ErrDuplicateUsername.
	Create(ctx context.Context, admin *model.AdminUser) error

	// UpdateUsername renames an admin. A duplicate username yields
	// model.ErrDuplicateUsername.
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error

	// UpdatePassword replaces an admin's password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes an admin account.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of admin accounts.
	Count(ctx context.Context) (int, error)
}

// PreferenceRepository defines the interface for per-email language
// preferences.
type PreferenceRepository interface {
	// Get retrieves the preference for an email, or nil when absent.
	Get(ctx context.Context, email string) (*model.UserPreference, error)

	// Upsert creates or updates the preference for an email.
	Upsert(ctx context.Context, email, language string) (*model.UserPreference, error)
}
