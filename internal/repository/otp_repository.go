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

// otpRepository implements the OtpRepository interface using PostgreSQL.
// Expired rows are left in place; they are harmless once past expiry and
// volume is low.
type otpRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOtpRepository creates a new PostgreSQL-backed OTP repository.
func NewOtpRepository(pool *pgxpool.Pool, logger zerolog.Logger) OtpRepository {
	return &otpRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "otp").Logger(),
	}
}

// Create inserts a new OTP row within the provided transaction.
func (r *otpRepository) Create(ctx context.Context, tx pgx.Tx, otp *model.Otp) error {
	query := `
		INSERT INTO otps (id, email, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, otp.ID, otp.Email, otp.Code, otp.ExpiresAt, otp.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("email", otp.Email).Msg("failed to create OTP")
		return fmt.Errorf("failed to create OTP: %w", err)
	}

	return nil
}

// FindByEmailAndCode retrieves the OTP row matching the exact
// (email, code) pair.
func (r *otpRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*model.Otp, error) {
	query := `
		SELECT id, email, code, expires_at, created_at
		FROM otps
		WHERE email = $1 AND code = $2
	`

	var otp model.Otp
	err := r.pool.QueryRow(ctx, query, email, code).Scan(
		&otp.ID, &otp.Email, &otp.Code, &otp.ExpiresAt, &otp.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query OTP")
		return nil, fmt.Errorf("failed to query OTP: %w", err)
	}

	return &otp, nil
}

// Delete removes a single OTP row within the provided transaction.
func (r *otpRepository) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `DELETE FROM otps WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("otp_id", id.String()).Msg("failed to delete OTP")
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

// DeleteByEmail removes every OTP row for an email within the provided
// transaction.
func (r *otpRepository) DeleteByEmail(ctx context.Context, tx pgx.Tx, email string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM otps WHERE email = $1`, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to delete OTPs for email")
		return fmt.Errorf("failed to delete OTPs: %w", err)
	}

	r.logger.Debug().
		Str("email", email).
		Int64("deleted", tag.RowsAffected()).
		Msg("invalidated prior OTPs")

	return nil
}
