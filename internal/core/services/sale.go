// internal/core/services/sale.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// SaleService handles sale business logic
type SaleService struct {
	repo   ports.SaleRepository
	logger *slog.Logger
}

var _ ports.SaleService = (*SaleService)(nil)

// NewSaleService creates a new sale service
func NewSaleService(repo ports.SaleRepository, logger *slog.Logger) *SaleService {
	return &SaleService{
		repo:   repo,
		logger: logger.With(slog.String("service", "sale")),
	}
}

// Create validates and records a new sale. Referenced clients and products
// must already exist; the store reports a constraint violation otherwise.
func (s *SaleService) Create(ctx context.Context, sale *domain.Sale) error {
	if err := sale.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	sale.PrepareForStorage()

	if err := s.repo.Create(ctx, sale); err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	s.logger.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", sale.ID.String()),
		slog.String("client_id", sale.ClientID.String()),
		slog.String("product_id", sale.ProductID.String()),
		slog.Int("quantity", sale.Quantity))

	return nil
}

// List returns one page of sales in insertion order
func (s *SaleService) List(ctx context.Context, page, limit int) (*ports.ListResult[domain.Sale], error) {
	result, err := listPage(ctx, s.repo, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return result, nil
}

// Get retrieves a sale by id
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*domain.Sale, error) {
	sale, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return sale, nil
}

// Update applies a partial update and returns the resulting sale
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, patch domain.SalePatch) (*domain.Sale, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sale, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	s.logger.InfoContext(ctx, "sale updated",
		slog.String("sale_id", id.String()),
		slog.Bool("empty_patch", patch.IsEmpty()))

	return sale, nil
}

// Delete removes a sale record
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	s.logger.InfoContext(ctx, "sale deleted",
		slog.String("sale_id", id.String()))

	return nil
}
