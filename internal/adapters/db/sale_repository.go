// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

var saleMapper = entityMapper[domain.Sale, domain.SalePatch]{
	table:   "sales",
	columns: []string{"id", "client_id", "product_id", "quantity", "total", "sale_date", "created_at"},

	insertSQL: `
		INSERT INTO sales (id, client_id, product_id, quantity, total, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, client_id, product_id, quantity, total, sale_date, created_at`,

	updateSQL: `
		UPDATE sales SET
			client_id = COALESCE($2, client_id),
			product_id = COALESCE($3, product_id),
			quantity = COALESCE($4, quantity),
			total = COALESCE($5, total),
			sale_date = COALESCE($6, sale_date)
		WHERE id = $1
		RETURNING id, client_id, product_id, quantity, total, sale_date, created_at`,

	insertArgs: func(s *domain.Sale) []any {
		return []any{s.ID, s.ClientID, s.ProductID, s.Quantity, s.Total, s.SaleDate, s.CreatedAt}
	},

	patchArgs: func(p domain.SalePatch) []any {
		return []any{p.ClientID, p.ProductID, p.Quantity, p.Total, p.SaleDate}
	},

	scan: func(row rowScanner) (*domain.Sale, error) {
		s := &domain.Sale{}
		if err := row.Scan(&s.ID, &s.ClientID, &s.ProductID, &s.Quantity, &s.Total, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		return s, nil
	},
}

// SaleRepository is the sale store plus the sales-history read the batch
// forecast needs.
type SaleRepository struct {
	*repository[domain.Sale, domain.SalePatch]
}

// NewSaleRepository creates the sale store.
func NewSaleRepository(database *Database, logger *slog.Logger) *SaleRepository {
	return &SaleRepository{
		repository: newRepository(database, saleMapper, logger),
	}
}

// QuantitiesByProduct returns the quantities of every recorded sale of a
// product, oldest first.
func (r *SaleRepository) QuantitiesByProduct(ctx context.Context, productID uuid.UUID) ([]decimal.Decimal, error) {
	rows, err := r.db.Query(ctx,
		"SELECT quantity FROM sales WHERE product_id = $1 ORDER BY sale_date ASC, id ASC", productID)
	if err != nil {
		return nil, translateError("sales history", err)
	}
	defer rows.Close()

	var quantities []decimal.Decimal
	for rows.Next() {
		var quantity int64
		if err := rows.Scan(&quantity); err != nil {
			return nil, translateError("sales history scan", err)
		}
		quantities = append(quantities, decimal.NewFromInt(quantity))
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("sales history rows", err)
	}

	return quantities, nil
}
