package repository

import (
	"context"
	"fmt"

	"rice-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// adminRepository implements the AdminRepository interface using PostgreSQL.
type adminRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAdminRepository creates a new PostgreSQL-backed admin repository.
func NewAdminRepository(pool *pgxpool.Pool, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "admin").Logger(),
	}
}

// GetByUsername retrieves an admin by username.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	query := `
		SELECT id, username, password, created_at, updated_at
		FROM admin_users
		WHERE username = $1
	`

	var admin model.AdminUser
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("username", username).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &admin, nil
}

// GetByID retrieves an admin by ID.
func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AdminUser, error) {
	query := `
		SELECT id, username, password, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`

	var admin model.AdminUser
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&admin.ID, &admin.Username, &admin.Password, &admin.CreatedAt, &admin.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to query admin")
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	return &admin, nil
}

// List retrieves all admin accounts. Password hashes are not selected.
func (r *adminRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	query := `
		SELECT id, username, created_at, updated_at
		FROM admin_users
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query admins")
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	var admins []model.AdminUser
	for rows.Next() {
		var a model.AdminUser
		if err := rows.Scan(&a.ID, &a.Username, &a.CreatedAt, &a.UpdatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan admin row")
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating admin rows")
		return nil, fmt.Errorf("error iterating admins: %w", err)
	}

	return admins, nil
}

// Create inserts a new admin.
func (r *adminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, username, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		admin.ID, admin.Username, admin.Password, admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn().Str("username", admin.Username).Msg("duplicate username")
			return model.ErrDuplicateUsername
		}
		r.logger.Error().Err(err).Str("username", admin.Username).Msg("failed to create admin")
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// UpdateUsername renames an admin.
func (r *adminRepository) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	query := `UPDATE admin_users SET username = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, username)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateUsername
		}
		r.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to update username")
		return fmt.Errorf("failed to update username: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}

	return nil
}

// UpdatePassword replaces an admin's password hash.
func (r *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE admin_users SET password = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		r.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to update password")
		return fmt.Errorf("failed to update password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}

	return nil
}

// Delete removes an admin account.
func (r *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("admin_id", id.String()).Msg("failed to delete admin")
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrAdminNotFound
	}

	return nil
}

// Count returns the number of admin accounts.
func (r *adminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admin_users`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count admins")
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}
