// internal/core/domain/pagination.go
package domain

// Pagination bounds. DefaultPageSize matches the original API contract;
// MaxPageSize keeps a single listing from scanning the whole table.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a validated (limit, offset) pair consumed verbatim by the
// repository list queries.
type PageRequest struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePage turns untrusted page/limit input into a bounded PageRequest.
// page < 1 clamps to 1 and limit outside (0, MaxPageSize] falls back to the
// default, so the resolver is total and the offset can never go negative.
func ResolvePage(page, limit int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PageRequest{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
