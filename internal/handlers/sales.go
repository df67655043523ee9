// internal/handlers/sales.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// SaleHandler handles sale-related HTTP requests
type SaleHandler struct {
	service ports.SaleService
	logger  *slog.Logger
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service ports.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "sales")),
	}
}

// CreateSaleRequest represents the request body for recording a sale
type CreateSaleRequest struct {
	ClientID  uuid.UUID       `json:"client_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	SaleDate  *time.Time      `json:"sale_date,omitempty"`
}

// ToDomain converts the request into a domain sale
func (r *CreateSaleRequest) ToDomain() *domain.Sale {
	sale := &domain.Sale{
		ClientID:  r.ClientID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Total:     r.Total,
	}
	if r.SaleDate != nil {
		sale.SaleDate = *r.SaleDate
	}
	return sale
}

// Create handles POST /api/v1/sales
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	sale := req.ToDomain()
	if err := h.service.Create(ctx, sale); err != nil {
		h.logger.ErrorContext(ctx, "failed to record sale",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "sale not found")
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, sale)
}

// List handles GET /api/v1/sales
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, limit := parsePageParams(r)

	result, err := h.service.List(ctx, page, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sales",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "sales not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/sales/{id}
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id format")
		return
	}

	sale, err := h.service.Get(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get sale",
			slog.String("sale_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "sale not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, sale)
}

// Update handles PATCH /api/v1/sales/{id}
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id format")
		return
	}

	var patch domain.SalePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.service.Update(ctx, id, patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update sale",
			slog.String("sale_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "sale not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, sale)
}

// Delete handles DELETE /api/v1/sales/{id}
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid sale id format")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete sale",
			slog.String("sale_id", id.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "sale not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "sale deleted successfully",
		"sale_id": id.String(),
	})
}
