// internal/core/services/list.go
package services

import (
	"context"
	"fmt"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// listPage resolves the page request, reads one page from the store and
// assembles the pagination envelope shared by every listing endpoint.
func listPage[T any, P any](ctx context.Context, repo ports.Repository[T, P], page, limit int) (*ports.ListResult[T], error) {
	req := domain.ResolvePage(page, limit)

	items, total, err := repo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list: %w", err)
	}

	return &ports.ListResult[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.Limit,
		TotalCount: total,
		TotalPages: totalPages(total, req.Limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
