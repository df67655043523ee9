// internal/handlers/products.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service ports.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ports.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "products")),
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   *string         `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

// ToDomain converts the request into a domain product
func (r *CreateProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
	}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	product := req.ToDomain()
	if err := h.service.Create(ctx, product); err != nil {
		h.logger.ErrorContext(ctx, "failed to create product",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit := parsePageParams(r)

	result, err := h.service.List(ctx, page, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "products not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid product id format")
		return
	}

	product, err := h.service.Get(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// Update handles PATCH /api/v1/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid product id format")
		return
	}

	var patch domain.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.service.Update(ctx, id, patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update product",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid product id format")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete product",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message":    "product deleted successfully",
		"product_id": id.String(),
	})
}
