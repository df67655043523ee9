// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

// ListResult wraps one page of entities with pagination metadata.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// ClientService defines the application service port for clients.
type ClientService interface {
	Create(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, page, limit int) (*ListResult[domain.Client], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ClientPatch) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductService defines the application service port for products.
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, page, limit int) (*ListResult[domain.Product], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleService defines the application service port for sales.
type SaleService interface {
	Create(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context, page, limit int) (*ListResult[domain.Sale], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Sale, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.SalePatch) (*domain.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ForecastService computes predictions and schedules their persistence.
type ForecastService interface {
	// Forecast runs the forecast rule and hands the result to the async
	// persistence path. The returned prediction is valid even when
	// persistence scheduling fails.
	Forecast(ctx context.Context, input domain.ForecastInput) (*domain.Prediction, error)

	// History lists stored predictions for a product, newest first.
	History(ctx context.Context, productID uuid.UUID, page, limit int) (*ListResult[domain.Prediction], error)
}

// TaskEnqueuer schedules background work. Implemented by the asynq adapter.
type TaskEnqueuer interface {
	EnqueuePredictionPersist(ctx context.Context, prediction *domain.Prediction) error
}
