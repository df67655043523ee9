// internal/adapters/db/product_repository.go
package db

import (
	"log/slog"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

var productMapper = entityMapper[domain.Product, domain.ProductPatch]{
	table:   "products",
	columns: []string{"id", "name", "description", "price", "stock_quantity", "created_at"},

	insertSQL: `
		INSERT INTO products (id, name, description, price, stock_quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, stock_quantity, created_at`,

	updateSQL: `
		UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			stock_quantity = COALESCE($5, stock_quantity)
		WHERE id = $1
		RETURNING id, name, description, price, stock_quantity, created_at`,

	insertArgs: func(p *domain.Product) []any {
		return []any{p.ID, p.Name, p.Description, p.Price, p.StockQuantity, p.CreatedAt}
	},

	patchArgs: func(p domain.ProductPatch) []any {
		return []any{p.Name, p.Description, p.Price, p.StockQuantity}
	},

	scan: func(row rowScanner) (*domain.Product, error) {
		p := &domain.Product{}
		if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.CreatedAt); err != nil {
			return nil, err
		}
		return p, nil
	},
}

// NewProductRepository creates the product store.
func NewProductRepository(database *Database, logger *slog.Logger) ports.ProductRepository {
	return newRepository(database, productMapper, logger)
}
