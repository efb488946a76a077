package service

import (
	"context"
	"fmt"
	"time"

	"rice-shop/internal/model"
	"rice-shop/internal/repository"
	"rice-shop/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	images      storage.ImageStore
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, images storage.ImageStore, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		images:      images,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves every product.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a product to the catalogue.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		SKU:         req.SKU,
		Price:       req.Price,
		Cost:        req.Cost,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("sku", product.SKU).
		Msg("product created")

	return product, nil
}

// Update overwrites a product's fields. An empty image in the request
// keeps the existing one; a replaced image has its old file removed.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return nil, model.ErrProductNotFound
	}

	image := existing.Image
	if req.Image != "" && req.Image != existing.Image {
		if existing.Image != "" {
			if err := s.images.Remove(ctx, existing.Image); err != nil {
				s.logger.Warn().Err(err).Str("image", existing.Image).Msg("failed to remove replaced image")
			}
		}
		image = req.Image
	}

	product := &model.Product{
		ID:          id,
		Name:        req.Name,
		SKU:         req.SKU,
		Price:       req.Price,
		Cost:        req.Cost,
		Description: req.Description,
		Image:       image,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product and its stored image.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if product.Image != "" {
		if err := s.images.Remove(ctx, product.Image); err != nil {
			s.logger.Warn().Err(err).Str("image", product.Image).Msg("failed to remove product image")
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

// validateProductRequest checks the fields required for both create and
// update.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil || req.Name == "" || req.SKU == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Missing required fields")
	}
	if req.Price <= 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Price must be greater than zero")
	}
	return nil
}
