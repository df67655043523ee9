// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/dmartins/varejo-be/internal/core/ports"
	"github.com/dmartins/varejo-be/internal/pkg/config"
)

// CleanupProcessor enforces the prediction retention window
type CleanupProcessor struct {
	predictions ports.PredictionRepository
	config      *config.Config
	logger      *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(predictions ports.PredictionRepository, cfg *config.Config, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		predictions: predictions,
		config:      cfg,
		logger:      logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupPredictions removes predictions past the retention window
func (p *CleanupProcessor) CleanupPredictions(ctx context.Context, t *asynq.Task) error {
	var payload PredictionsCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal cleanup payload: %v: %w", err, asynq.SkipRetry)
	}

	days := payload.RetentionDays
	if days <= 0 {
		days = p.config.Forecast.RetentionDays
	}

	deleted, err := p.predictions.DeleteOlderThan(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to cleanup predictions: %w", err)
	}

	p.logger.InfoContext(ctx, "stale predictions removed",
		slog.Int("retention_days", days),
		slog.Int64("rows_deleted", deleted))

	return nil
}
