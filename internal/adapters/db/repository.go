// internal/adapters/db/repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows, so one scan
// function per entity covers single-row and multi-row reads.
type rowScanner interface {
	Scan(dest ...any) error
}

// entityMapper describes how one entity type maps onto its table. The
// update statement carries the merge semantics itself: every mutable column
// is written as COALESCE($n, column), so a nil patch field keeps the current
// value and the whole merge is a single atomic statement. A separate
// read-then-write pair would lose concurrent updates.
type entityMapper[T any, P any] struct {
	table      string
	columns    []string
	insertSQL  string
	updateSQL  string
	insertArgs func(*T) []any
	patchArgs  func(P) []any
	scan       func(rowScanner) (*T, error)
}

// repository is the generic entity store. It is instantiated once per
// entity type with that entity's mapper.
type repository[T any, P any] struct {
	db     *Database
	mapper entityMapper[T, P]
	logger *slog.Logger
}

func newRepository[T any, P any](database *Database, mapper entityMapper[T, P], logger *slog.Logger) *repository[T, P] {
	return &repository[T, P]{
		db:     database,
		mapper: mapper,
		logger: logger.With(slog.String("repository", mapper.table)),
	}
}

// Create inserts a new row and scans back the stored row, including
// server-assigned defaults.
func (r *repository[T, P]) Create(ctx context.Context, entity *T) error {
	stored, err := r.mapper.scan(r.db.QueryRow(ctx, r.mapper.insertSQL, r.mapper.insertArgs(entity)...))
	if err != nil {
		return translateError(r.mapper.table+" create", err)
	}
	*entity = *stored

	r.logger.DebugContext(ctx, "row created", slog.String("table", r.mapper.table))
	return nil
}

// List returns one page of rows in insertion order along with the total
// count. An empty page is a valid result, not an error.
func (r *repository[T, P]) List(ctx context.Context, page domain.PageRequest) ([]T, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.mapper.table).Scan(&total); err != nil {
		return nil, 0, translateError(r.mapper.table+" count", err)
	}

	qb := squirrel.Select(r.mapper.columns...).
		From(r.mapper.table).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s list: failed to build query: %w", r.mapper.table, err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, translateError(r.mapper.table+" list", err)
	}
	defer rows.Close()

	items := make([]T, 0, page.Limit)
	for rows.Next() {
		entity, err := r.mapper.scan(rows)
		if err != nil {
			return nil, 0, translateError(r.mapper.table+" list scan", err)
		}
		items = append(items, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(r.mapper.table+" list rows", err)
	}

	return items, total, nil
}

// Get returns the row for id or domain.ErrNotFound.
func (r *repository[T, P]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1",
		strings.Join(r.mapper.columns, ", "), r.mapper.table)

	entity, err := r.mapper.scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(r.mapper.table+" get", err)
	}
	return entity, nil
}

// Update applies the patch and returns the resulting row. The statement
// both merges and detects a missing id: zero rows returned means NotFound,
// folded into the same round-trip.
func (r *repository[T, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*T, error) {
	args := append([]any{id}, r.mapper.patchArgs(patch)...)

	entity, err := r.mapper.scan(r.db.QueryRow(ctx, r.mapper.updateSQL, args...))
	if err != nil {
		return nil, translateError(r.mapper.table+" update", err)
	}

	r.logger.DebugContext(ctx, "row updated",
		slog.String("table", r.mapper.table),
		slog.String("id", id.String()))

	return entity, nil
}

// Delete removes the row for id. Dependent rows go with it through the
// schema's ON DELETE CASCADE clauses.
func (r *repository[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM "+r.mapper.table+" WHERE id = $1", id)
	if err != nil {
		return translateError(r.mapper.table+" delete", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s delete: %s: %w", r.mapper.table, id, domain.ErrNotFound)
	}

	r.logger.InfoContext(ctx, "row deleted",
		slog.String("table", r.mapper.table),
		slog.String("id", id.String()))

	return nil
}
