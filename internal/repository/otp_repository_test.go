package repository

import (
	"context"
	"testing"
	"time"

	"rice-shop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createOtp inserts an OTP row inside its own committed transaction.
func createOtp(t *testing.T, pool *pgxpool.Pool, repo OtpRepository, otp *model.Otp) {
	ctx := context.Background()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, tx, otp))
	require.NoError(t, tx.Commit(ctx))
}

func testOtp(email, code string) *model.Otp {
	now := time.Now()
	return &model.Otp{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(model.OtpTTL),
		CreatedAt: now,
	}
}

func TestOtpRepository_FindByEmailAndCode(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOtpRepository(pool, zerolog.Nop())
	ctx := context.Background()

	otp := testOtp("aung@example.com", "482913")
	createOtp(t, pool, repo, otp)

	tests := []struct {
		name      string
		email     string
		code      string
		expectNil bool
	}{
		{
			name:  "Exact match",
			email: "aung@example.com",
			code:  "482913",
		},
		{
			name:      "Wrong code",
			email:     "aung@example.com",
			code:      "000000",
			expectNil: true,
		},
		{
			name:      "Wrong email",
			email:     "other@example.com",
			code:      "482913",
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindByEmailAndCode(ctx, tt.email, tt.code)

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, found)
			} else {
				require.NotNil(t, found)
				assert.Equal(t, otp.ID, found.ID)
				assert.Equal(t, otp.Email, found.Email)
				assert.Equal(t, otp.Code, found.Code)
				assert.WithinDuration(t, otp.ExpiresAt, found.ExpiresAt, time.Second)
			}
		})
	}
}

func TestOtpRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOtpRepository(pool, zerolog.Nop())
	ctx := context.Background()

	otp := testOtp("aung@example.com", "482913")
	createOtp(t, pool, repo, otp)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, tx, otp.ID))
	require.NoError(t, tx.Commit(ctx))

	found, err := repo.FindByEmailAndCode(ctx, otp.Email, otp.Code)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestOtpRepository_DeleteByEmail(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOtpRepository(pool, zerolog.Nop())
	ctx := context.Background()

	// Two codes for the same address, one for another customer.
	first := testOtp("aung@example.com", "111111")
	second := testOtp("aung@example.com", "222222")
	other := testOtp("su@example.com", "333333")
	for _, o := range []*model.Otp{first, second, other} {
		createOtp(t, pool, repo, o)
	}

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByEmail(ctx, tx, "aung@example.com"))
	require.NoError(t, tx.Commit(ctx))

	for _, o := range []*model.Otp{first, second} {
		found, err := repo.FindByEmailAndCode(ctx, o.Email, o.Code)
		require.NoError(t, err)
		assert.Nil(t, found)
	}

	found, err := repo.FindByEmailAndCode(ctx, other.Email, other.Code)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
