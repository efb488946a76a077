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

// seedProducts inserts test products into the database.
func seedProducts(t *testing.T, pool *pgxpool.Pool, products []model.Product) {
	ctx := context.Background()

	query := `
		INSERT INTO products (id, name, sku, price, cost, description, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, p := range products {
		_, err := pool.Exec(ctx, query,
			p.ID, p.Name, p.SKU, p.Price, p.Cost, p.Description, p.Image, p.CreatedAt, p.UpdatedAt,
		)
		require.NoError(t, err)
	}
}

func TestProductRepository_GetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewProductRepository(pool, logger)

	now := time.Now()
	testProducts := []model.Product{
		{ID: uuid.New(), Name: "Paw San Rice 5kg", SKU: "PSR-5KG", Price: 32000, Cost: 25000, CreatedAt: now.Add(-3 * time.Hour), UpdatedAt: now.Add(-3 * time.Hour)},
		{ID: uuid.New(), Name: "Shwe Bo Paw San 10kg", SKU: "SBP-10KG", Price: 60000, Cost: 47000, CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Name: "Broken Rice 25kg", SKU: "BR-25KG", Price: 80000, Cost: 62000, CreatedAt: now.Add(-1 * time.Hour), UpdatedAt: now.Add(-1 * time.Hour)},
	}
	seedProducts(t, pool, testProducts)

	ctx := context.Background()
	products, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, products, 3)

	// Newest first
	assert.Equal(t, "BR-25KG", products[0].SKU)
	assert.Equal(t, "SBP-10KG", products[1].SKU)
	assert.Equal(t, "PSR-5KG", products[2].SKU)
}

func TestProductRepository_GetAll_Empty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())

	products, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())

	now := time.Now()
	testProduct := model.Product{
		ID:          uuid.New(),
		Name:        "Paw San Rice 5kg",
		SKU:         "PSR-5KG",
		Price:       32000,
		Cost:        25000,
		Description: "Premium fragrant rice",
		Image:       "/uploads/psr.jpg",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	seedProducts(t, pool, []model.Product{testProduct})

	tests := []struct {
		name      string
		id        uuid.UUID
		expectNil bool
	}{
		{
			name:      "Product exists",
			id:        testProduct.ID,
			expectNil: false,
		},
		{
			name:      "Product does not exist",
			id:        uuid.New(),
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			product, err := repo.GetByID(ctx, tt.id)

			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, product)
			} else {
				require.NotNil(t, product)
				assert.Equal(t, testProduct.Name, product.Name)
				assert.Equal(t, testProduct.SKU, product.SKU)
				assert.Equal(t, testProduct.Price, product.Price)
				assert.Equal(t, testProduct.Cost, product.Cost)
				assert.Equal(t, testProduct.Description, product.Description)
				assert.Equal(t, testProduct.Image, product.Image)
			}
		})
	}
}

func TestProductRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	product := &model.Product{
		ID:        uuid.New(),
		Name:      "Paw San Rice 5kg",
		SKU:       "PSR-5KG",
		Price:     32000,
		Cost:      25000,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.Create(ctx, product)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "PSR-5KG", stored.SKU)
}

func TestProductRepository_Create_DuplicateSKU(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	first := &model.Product{
		ID: uuid.New(), Name: "Paw San Rice 5kg", SKU: "PSR-5KG",
		Price: 32000, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, first))

	duplicate := &model.Product{
		ID: uuid.New(), Name: "Another Bag", SKU: "PSR-5KG",
		Price: 30000, CreatedAt: now, UpdatedAt: now,
	}
	err := repo.Create(ctx, duplicate)

	assert.ErrorIs(t, err, model.ErrDuplicateSKU)
}

func TestProductRepository_Update(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	product := model.Product{
		ID: uuid.New(), Name: "Paw San Rice 5kg", SKU: "PSR-5KG",
		Price: 32000, Cost: 25000, CreatedAt: now, UpdatedAt: now,
	}
	seedProducts(t, pool, []model.Product{product})

	product.Name = "Paw San Rice 5kg (New Crop)"
	product.Price = 34000
	product.Image = "/uploads/new-crop.jpg"
	product.UpdatedAt = time.Now()

	err := repo.Update(ctx, &product)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Paw San Rice 5kg (New Crop)", stored.Name)
	assert.Equal(t, 34000.0, stored.Price)
	assert.Equal(t, "/uploads/new-crop.jpg", stored.Image)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())

	now := time.Now()
	missing := &model.Product{
		ID: uuid.New(), Name: "Ghost", SKU: "GH-1",
		Price: 1000, CreatedAt: now, UpdatedAt: now,
	}
	err := repo.Update(context.Background(), missing)

	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	now := time.Now()
	product := model.Product{
		ID: uuid.New(), Name: "Paw San Rice 5kg", SKU: "PSR-5KG",
		Price: 32000, CreatedAt: now, UpdatedAt: now,
	}
	seedProducts(t, pool, []model.Product{product})

	err := repo.Delete(ctx, product.ID)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = repo.Delete(ctx, product.ID)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestProductRepository_Count(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	now := time.Now()
	seedProducts(t, pool, []model.Product{
		{ID: uuid.New(), Name: "A", SKU: "A-1", Price: 1000, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "B", SKU: "B-1", Price: 2000, CreatedAt: now, UpdatedAt: now},
	})

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
