// internal/handlers/forecast.go
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

// ForecastHandler handles forecast HTTP requests
type ForecastHandler struct {
	service       ports.ForecastService
	defaultPromo  decimal.Decimal
	defaultSeason decimal.Decimal
	logger        *slog.Logger
}

// NewForecastHandler creates a new forecast handler. The default factors
// apply when a request omits them.
func NewForecastHandler(service ports.ForecastService, defaultPromo, defaultSeason float64, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{
		service:       service,
		defaultPromo:  decimal.NewFromFloat(defaultPromo),
		defaultSeason: decimal.NewFromFloat(defaultSeason),
		logger:        logger.With(slog.String("handler", "forecast")),
	}
}

// ForecastRequest represents the request body for computing a forecast
type ForecastRequest struct {
	ProductID         uuid.UUID         `json:"product_id"`
	HistoricalSales   []decimal.Decimal `json:"historical_sales"`
	CurrentStock      int               `json:"current_stock"`
	PromotionalFactor *decimal.Decimal  `json:"promotional_factor,omitempty"`
	SeasonalityFactor *decimal.Decimal  `json:"seasonality_factor,omitempty"`
}

// ToDomain converts the request into forecast input, filling in default
// factors where the request leaves them out.
func (r *ForecastRequest) ToDomain(defaultPromo, defaultSeason decimal.Decimal) domain.ForecastInput {
	input := domain.ForecastInput{
		ProductID:         r.ProductID,
		HistoricalSales:   r.HistoricalSales,
		CurrentStock:      r.CurrentStock,
		PromotionalFactor: defaultPromo,
		SeasonalityFactor: defaultSeason,
	}
	if r.PromotionalFactor != nil {
		input.PromotionalFactor = *r.PromotionalFactor
	}
	if r.SeasonalityFactor != nil {
		input.SeasonalityFactor = *r.SeasonalityFactor
	}
	return input
}

// Forecast handles POST /api/v1/forecast
func (h *ForecastHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	prediction, err := h.service.Forecast(ctx, req.ToDomain(h.defaultPromo, h.defaultSeason))
	if err != nil {
		h.logger.ErrorContext(ctx, "forecast failed",
			slog.String("product_id", req.ProductID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, prediction)
}

// History handles GET /api/v1/forecast/{product_id}
func (h *ForecastHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := uuid.Parse(r.PathValue("product_id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid product id format")
		return
	}

	page, limit := parsePageParams(r)
	result, err := h.service.History(ctx, productID, page, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list predictions",
			slog.String("product_id", productID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err, "predictions not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
