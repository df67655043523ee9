// internal/core/services/forecast.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// ForecastService computes sales predictions and hands them to the
// background persistence path.
type ForecastService struct {
	predictions ports.PredictionRepository
	enqueuer    ports.TaskEnqueuer
	logger      *slog.Logger
}

var _ ports.ForecastService = (*ForecastService)(nil)

// NewForecastService creates a new forecast service
func NewForecastService(predictions ports.PredictionRepository, enqueuer ports.TaskEnqueuer, logger *slog.Logger) *ForecastService {
	return &ForecastService{
		predictions: predictions,
		enqueuer:    enqueuer,
		logger:      logger.With(slog.String("service", "forecast")),
	}
}

// Forecast runs the forecast rule and schedules the prediction for
// persistence. A scheduling failure is logged but never invalidates the
// returned prediction.
func (s *ForecastService) Forecast(ctx context.Context, input domain.ForecastInput) (*domain.Prediction, error) {
	prediction, err := domain.Forecast(input)
	if err != nil {
		return nil, fmt.Errorf("forecast failed: %w", err)
	}
	prediction.PrepareForStorage()

	if err := s.enqueuer.EnqueuePredictionPersist(ctx, prediction); err != nil {
		s.logger.ErrorContext(ctx, "failed to schedule prediction persistence",
			slog.String("product_id", prediction.ProductID.String()),
			slog.Any("error", err))
	}

	s.logger.InfoContext(ctx, "forecast computed",
		slog.String("product_id", prediction.ProductID.String()),
		slog.String("predicted_sales", prediction.PredictedSales.String()),
		slog.Int("predicted_stock", prediction.PredictedStock))

	return prediction, nil
}

// History lists stored predictions for a product, newest first
func (s *ForecastService) History(ctx context.Context, productID uuid.UUID, page, limit int) (*ports.ListResult[domain.Prediction], error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrInvalidInput)
	}

	req := domain.ResolvePage(page, limit)
	items, total, err := s.predictions.ListByProduct(ctx, productID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}

	return &ports.ListResult[domain.Prediction]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.Limit,
		TotalCount: total,
		TotalPages: totalPages(total, req.Limit),
	}, nil
}
