// internal/adapters/db/client_repository.go
package db

import (
	"log/slog"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

var clientMapper = entityMapper[domain.Client, domain.ClientPatch]{
	table:   "clients",
	columns: []string{"id", "name", "email", "phone", "created_at"},

	insertSQL: `
		INSERT INTO clients (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, phone, created_at`,

	updateSQL: `
		UPDATE clients SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			phone = COALESCE($4, phone)
		WHERE id = $1
		RETURNING id, name, email, phone, created_at`,

	insertArgs: func(c *domain.Client) []any {
		return []any{c.ID, c.Name, c.Email, c.Phone, c.CreatedAt}
	},

	patchArgs: func(p domain.ClientPatch) []any {
		return []any{p.Name, p.Email, p.Phone}
	},

	scan: func(row rowScanner) (*domain.Client, error) {
		c := &domain.Client{}
		if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		return c, nil
	},
}

// NewClientRepository creates the client store.
func NewClientRepository(database *Database, logger *slog.Logger) ports.ClientRepository {
	return newRepository(database, clientMapper, logger)
}
