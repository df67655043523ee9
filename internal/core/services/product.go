// internal/core/services/product.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// ProductService handles product business logic
type ProductService struct {
	repo   ports.ProductRepository
	logger *slog.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

// NewProductService creates a new product service
func NewProductService(repo ports.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger.With(slog.String("service", "product")),
	}
}

// Create validates and stores a new product
func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	product.PrepareForStorage()

	if err := s.repo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name))

	return nil
}

// List returns one page of products in insertion order
func (s *ProductService) List(ctx context.Context, page, limit int) (*ports.ListResult[domain.Product], error) {
	result, err := listPage(ctx, s.repo, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return result, nil
}

// Get retrieves a product by id
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Update applies a partial update and returns the resulting product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", id.String()),
		slog.Bool("empty_patch", patch.IsEmpty()))

	return product, nil
}

// Delete removes a product and, through the schema, its sales
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id.String()))

	return nil
}
