// internal/adapters/db/prediction_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// PredictionRepository persists forecast output. The table is append-only,
// so there is no per-row update or delete; retention cleanup is the only
// way rows leave.
type PredictionRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPredictionRepository creates the prediction store.
func NewPredictionRepository(database *Database, logger *slog.Logger) ports.PredictionRepository {
	return &PredictionRepository{db: database, logger: logger}
}

const predictionColumns = "id, product_id, predicted_sales, predicted_stock, confidence, created_at"

// Create appends a prediction row.
func (r *PredictionRepository) Create(ctx context.Context, prediction *domain.Prediction) error {
	prediction.PrepareForStorage()

	query := `
		INSERT INTO sales_predictions (id, product_id, predicted_sales, predicted_stock, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + predictionColumns

	row := r.db.QueryRow(ctx, query,
		prediction.ID,
		prediction.ProductID,
		prediction.PredictedSales,
		prediction.PredictedStock,
		prediction.Confidence,
		prediction.CreatedAt,
	)
	stored, err := scanPrediction(row)
	if err != nil {
		return translateError("create prediction", err)
	}
	*prediction = *stored

	r.logger.DebugContext(ctx, "prediction stored",
		slog.String("prediction_id", prediction.ID.String()),
		slog.String("product_id", prediction.ProductID.String()))
	return nil
}

// ListByProduct returns a product's predictions newest first, bounded by the
// page request, along with the unbounded total count.
func (r *PredictionRepository) ListByProduct(ctx context.Context, productID uuid.UUID, page domain.PageRequest) ([]domain.Prediction, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM sales_predictions WHERE product_id = $1", productID).Scan(&total)
	if err != nil {
		return nil, 0, translateError("count predictions", err)
	}

	query := `
		SELECT ` + predictionColumns + `
		FROM sales_predictions
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, translateError("list predictions", err)
	}
	defer rows.Close()

	predictions := make([]domain.Prediction, 0, page.Limit)
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, 0, translateError("scan prediction", err)
		}
		predictions = append(predictions, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError("list predictions rows", err)
	}

	return predictions, total, nil
}

// DeleteOlderThan drops predictions created more than the given number of
// days ago and returns how many rows were removed.
func (r *PredictionRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM sales_predictions WHERE created_at < NOW() - make_interval(days => $1)", days)
	if err != nil {
		return 0, translateError("delete stale predictions", err)
	}
	return tag.RowsAffected(), nil
}

func scanPrediction(row rowScanner) (*domain.Prediction, error) {
	p := &domain.Prediction{}
	err := row.Scan(&p.ID, &p.ProductID, &p.PredictedSales, &p.PredictedStock, &p.Confidence, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
