package service

import (
	"context"
	"fmt"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create persists a new product and returns it with its assigned id.
func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", created.ID).
		Str("name", created.Name).
		Msg("product created")

	return created, nil
}

// Get retrieves a single product by id.
func (s *productService) Get(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.NewNotFoundError(id)
	}

	return product, nil
}

// Update replaces all mutable fields of an existing product.
func (s *productService) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Debug().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().Int64("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

// Delete removes a product by id. Absence is treated as success so the
// operation stays idempotent.
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// List retrieves products, applying at most one filter criterion.
func (s *productService) List(ctx context.Context, filter ListFilter) ([]model.Product, error) {
	var (
		products []model.Product
		err      error
	)

	switch {
	case filter.Name != nil:
		products, err = s.productRepo.FindByName(ctx, *filter.Name)
	case filter.Category != nil:
		products, err = s.productRepo.FindByCategory(ctx, *filter.Category)
	case filter.Available != nil:
		products, err = s.productRepo.FindByAvailability(ctx, *filter.Available)
	default:
		products, err = s.productRepo.GetAll(ctx)
	}

	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("listed products")
	return products, nil
}
