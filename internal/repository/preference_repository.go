package repository

import (
	"context"
	"fmt"

	"rice-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// preferenceRepository implements the PreferenceRepository interface
// using PostgreSQL.
type preferenceRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPreferenceRepository creates a new PostgreSQL-backed preference repository.
func NewPreferenceRepository(pool *pgxpool.Pool, logger zerolog.Logger) PreferenceRepository {
	return &preferenceRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "preference").Logger(),
	}
}

// Get retrieves the preference for an email.
func (r *preferenceRepository) Get(ctx context.Context, email string) (*model.UserPreference, error) {
	query := `
		SELECT email, language, created_at, updated_at
		FROM user_preferences
		WHERE email = $1
	`

	var pref model.UserPreference
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&pref.Email, &pref.Language, &pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query preference")
		return nil, fmt.Errorf("failed to query preference: %w", err)
	}

	return &pref, nil
}

// Upsert creates or updates the preference for an email.
func (r *preferenceRepository) Upsert(ctx context.Context, email, language string) (*model.UserPreference, error) {
	query := `
		INSERT INTO user_preferences (email, language, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET language = EXCLUDED.language, updated_at = NOW()
		RETURNING email, language, created_at, updated_at
	`

	var pref model.UserPreference
	err := r.pool.QueryRow(ctx, query, email, language).Scan(
		&pref.Email, &pref.Language, &pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to upsert preference")
		return nil, fmt.Errorf("failed to upsert preference: %w", err)
	}

	r.logger.Debug().
		Str("email", email).
		Str("language", language).
		Msg("language preference saved")

	return &pref, nil
}
