// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

// Repository is the persistence contract shared by every entity type.
// T is the entity, P its partial-update patch. Implementations translate
// driver failures into the domain error taxonomy.
type Repository[T any, P any] interface {
	// Create inserts a new row and fills in server-assigned defaults.
	Create(ctx context.Context, entity *T) error

	// List returns rows in insertion order, bounded by the page request,
	// along with the unbounded total count. An empty result is not an error.
	List(ctx context.Context, page domain.PageRequest) ([]T, int64, error)

	// Get returns the row for id or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// Update applies the patch in a single atomic statement and returns the
	// resulting row. Fields the patch leaves nil keep their current value.
	Update(ctx context.Context, id uuid.UUID, patch P) (*T, error)

	// Delete removes the row for id or fails with domain.ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Per-entity instantiations of the generic store contract.
type (
	ClientRepository  = Repository[domain.Client, domain.ClientPatch]
	ProductRepository = Repository[domain.Product, domain.ProductPatch]
	SaleRepository    = Repository[domain.Sale, domain.SalePatch]
)

// PredictionRepository persists forecast output. Predictions are append-only,
// so there is no update or delete of individual rows.
type PredictionRepository interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
	ListByProduct(ctx context.Context, productID uuid.UUID, page domain.PageRequest) ([]domain.Prediction, int64, error)

	// DeleteOlderThan drops predictions past the retention window and
	// returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

// SalesHistory exposes the per-product sale quantities the batch forecast
// feeds into the forecast rule.
type SalesHistory interface {
	QuantitiesByProduct(ctx context.Context, productID uuid.UUID) ([]decimal.Decimal, error)
}
