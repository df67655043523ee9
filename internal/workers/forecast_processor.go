// internal/workers/forecast_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
	"github.com/dmartins/varejo-be/internal/pkg/config"
)

// ForecastProcessor persists computed predictions and recomputes the batch
// forecast across the catalog.
type ForecastProcessor struct {
	products    ports.ProductRepository
	history     ports.SalesHistory
	predictions ports.PredictionRepository
	config      *config.Config
	logger      *slog.Logger
}

// NewForecastProcessor creates a new forecast processor
func NewForecastProcessor(
	products ports.ProductRepository,
	history ports.SalesHistory,
	predictions ports.PredictionRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *ForecastProcessor {
	return &ForecastProcessor{
		products:    products,
		history:     history,
		predictions: predictions,
		config:      cfg,
		logger:      logger.With(slog.String("processor", "forecast")),
	}
}

// PersistPrediction stores a prediction computed on the request path.
func (p *ForecastProcessor) PersistPrediction(ctx context.Context, t *asynq.Task) error {
	var payload PredictionPersistPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal prediction payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := p.predictions.Create(ctx, &payload.Prediction); err != nil {
		// A vanished product is not worth retrying, the row cannot exist
		if errors.Is(err, domain.ErrConstraintViolation) {
			p.logger.WarnContext(ctx, "dropping prediction for missing product",
				slog.String("product_id", payload.Prediction.ProductID.String()))
			return nil
		}
		return fmt.Errorf("failed to persist prediction: %w", err)
	}

	p.logger.InfoContext(ctx, "prediction persisted",
		slog.String("prediction_id", payload.Prediction.ID.String()),
		slog.String("product_id", payload.Prediction.ProductID.String()))

	return nil
}

// RefreshForecasts recomputes and stores a prediction for each requested
// product, or for the whole catalog when the payload names none.
func (p *ForecastProcessor) RefreshForecasts(ctx context.Context, t *asynq.Task) error {
	var payload ForecastRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal refresh payload: %v: %w", err, asynq.SkipRetry)
	}

	products, err := p.resolveProducts(ctx, payload.ProductIDs)
	if err != nil {
		return err
	}

	var refreshed, skipped int
	for i := range products {
		ok, err := p.refreshOne(ctx, &products[i])
		if err != nil {
			return err
		}
		if ok {
			refreshed++
		} else {
			skipped++
		}
	}

	p.logger.InfoContext(ctx, "batch forecast complete",
		slog.Int("refreshed", refreshed),
		slog.Int("skipped", skipped))

	return nil
}

func (p *ForecastProcessor) resolveProducts(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) > 0 {
		products := make([]domain.Product, 0, len(ids))
		for _, raw := range ids {
			id, err := uuid.Parse(raw)
			if err != nil {
				p.logger.WarnContext(ctx, "skipping malformed product id", slog.String("id", raw))
				continue
			}
			product, err := p.products.Get(ctx, id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("failed to load product %s: %w", id, err)
			}
			products = append(products, *product)
		}
		return products, nil
	}

	// Walk the whole catalog page by page
	var products []domain.Product
	page := domain.DefaultPage
	for {
		batch, total, err := p.products.List(ctx, domain.ResolvePage(page, domain.MaxPageSize))
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}
		products = append(products, batch...)
		if int64(len(products)) >= total || len(batch) == 0 {
			return products, nil
		}
		page++
	}
}

// refreshOne computes and stores one prediction. Products without sales
// history are skipped, the forecast rule has nothing to average.
func (p *ForecastProcessor) refreshOne(ctx context.Context, product *domain.Product) (bool, error) {
	quantities, err := p.history.QuantitiesByProduct(ctx, product.ID)
	if err != nil {
		return false, fmt.Errorf("failed to load sales history for %s: %w", product.ID, err)
	}
	if len(quantities) == 0 {
		return false, nil
	}

	input := domain.ForecastInput{
		ProductID:         product.ID,
		HistoricalSales:   quantities,
		CurrentStock:      product.StockQuantity,
		PromotionalFactor: decimal.NewFromFloat(p.config.Forecast.DefaultPromotionalFactor),
		SeasonalityFactor: decimal.NewFromFloat(p.config.Forecast.DefaultSeasonalityFactor),
	}

	prediction, err := domain.Forecast(input)
	if err != nil {
		return false, fmt.Errorf("forecast failed for %s: %w", product.ID, err)
	}

	if err := p.predictions.Create(ctx, prediction); err != nil {
		if errors.Is(err, domain.ErrConstraintViolation) {
			// Product deleted between listing and persisting
			return false, nil
		}
		return false, fmt.Errorf("failed to persist prediction for %s: %w", product.ID, err)
	}

	return true, nil
}
