// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// Task type identifiers
const (
	TypePredictionPersist  = "forecast:persist"
	TypeForecastRefresh    = "forecast:refresh"
	TypePredictionsCleanup = "predictions:cleanup"
)

// PredictionPersistPayload carries one computed prediction to the worker.
type PredictionPersistPayload struct {
	Prediction domain.Prediction `json:"prediction"`
}

// ForecastRefreshPayload requests a batch forecast recomputation. An empty
// ProductIDs slice means every product.
type ForecastRefreshPayload struct {
	ProductIDs []string `json:"product_ids,omitempty"`
}

// PredictionsCleanupPayload bounds the retention window for stored predictions.
type PredictionsCleanupPayload struct {
	RetentionDays int `json:"retention_days"`
}

// Enqueuer schedules background tasks through asynq.
type Enqueuer struct {
	client *asynq.Client
	logger *slog.Logger
}

// Statically assert that *Enqueuer implements the TaskEnqueuer interface.
var _ ports.TaskEnqueuer = (*Enqueuer)(nil)

// NewEnqueuer creates a task enqueuer backed by an asynq client.
func NewEnqueuer(client *asynq.Client, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		client: client,
		logger: logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueuePredictionPersist schedules a prediction for persistence.
func (e *Enqueuer) EnqueuePredictionPersist(ctx context.Context, prediction *domain.Prediction) error {
	payload, err := json.Marshal(PredictionPersistPayload{Prediction: *prediction})
	if err != nil {
		return fmt.Errorf("failed to marshal prediction payload: %w", err)
	}

	task := asynq.NewTask(TypePredictionPersist, payload)
	info, err := e.client.EnqueueContext(ctx, task, asynq.Queue("critical"), asynq.MaxRetry(5))
	if err != nil {
		return fmt.Errorf("failed to enqueue prediction persist: %w", err)
	}

	e.logger.DebugContext(ctx, "prediction persist enqueued",
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue),
		slog.String("product_id", prediction.ProductID.String()))

	return nil
}

// EnqueueForecastRefresh schedules a batch forecast recomputation.
func (e *Enqueuer) EnqueueForecastRefresh(ctx context.Context, productIDs []string) error {
	payload, err := json.Marshal(ForecastRefreshPayload{ProductIDs: productIDs})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh payload: %w", err)
	}

	task := asynq.NewTask(TypeForecastRefresh, payload)
	info, err := e.client.EnqueueContext(ctx, task, asynq.Queue("default"))
	if err != nil {
		return fmt.Errorf("failed to enqueue forecast refresh: %w", err)
	}

	e.logger.DebugContext(ctx, "forecast refresh enqueued",
		slog.String("task_id", info.ID),
		slog.Int("products", len(productIDs)))

	return nil
}

// EnqueuePredictionsCleanup schedules retention cleanup of stored predictions.
func (e *Enqueuer) EnqueuePredictionsCleanup(ctx context.Context, retentionDays int) error {
	payload, err := json.Marshal(PredictionsCleanupPayload{RetentionDays: retentionDays})
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup payload: %w", err)
	}

	task := asynq.NewTask(TypePredictionsCleanup, payload)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.Queue("low")); err != nil {
		return fmt.Errorf("failed to enqueue predictions cleanup: %w", err)
	}

	return nil
}
