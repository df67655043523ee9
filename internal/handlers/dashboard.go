// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmartins/varejo-be/internal/adapters/db"
	redis_a "github.com/dmartins/varejo-be/internal/adapters/redis_adapter"
	"github.com/dmartins/varejo-be/internal/core/ports"
)

// DashboardHandler handles dashboard operations
type DashboardHandler struct {
	db     *db.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(database *db.Database, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		db:     database,
		cache:  cache,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// DashboardData aggregates the record counts and revenue shown on the
// back-office landing page.
type DashboardData struct {
	Timestamp time.Time        `json:"timestamp"`
	Summary   DashboardSummary `json:"summary"`
}

// DashboardSummary holds the headline numbers
type DashboardSummary struct {
	TotalClients    int64           `json:"total_clients"`
	TotalProducts   int64           `json:"total_products"`
	TotalSales      int64           `json:"total_sales"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	UnitsSold       int64           `json:"units_sold"`
	StockOnHand     int64           `json:"stock_on_hand"`
	AverageSale     decimal.Decimal `json:"average_sale"`
	PredictionsKept int64           `json:"predictions_kept"`
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "main")
	var dashboard DashboardData

	err := h.cache.GetOrSet(ctx, cacheKey, &dashboard, func() (interface{}, error) {
		return h.loadDashboardData(ctx)
	}, 5*time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, dashboard)
}

func (h *DashboardHandler) loadDashboardData(ctx context.Context) (*DashboardData, error) {
	dashboard := &DashboardData{
		Timestamp: time.Now(),
	}

	summaryQuery := `
		SELECT
			(SELECT COUNT(*) FROM clients) AS total_clients,
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM sales) AS total_sales,
			(SELECT COALESCE(SUM(total), 0) FROM sales) AS total_revenue,
			(SELECT COALESCE(SUM(quantity), 0) FROM sales) AS units_sold,
			(SELECT COALESCE(SUM(stock_quantity), 0) FROM products) AS stock_on_hand,
			(SELECT COUNT(*) FROM sales_predictions) AS predictions_kept
	`

	err := h.db.QueryRow(ctx, summaryQuery).Scan(
		&dashboard.Summary.TotalClients,
		&dashboard.Summary.TotalProducts,
		&dashboard.Summary.TotalSales,
		&dashboard.Summary.TotalRevenue,
		&dashboard.Summary.UnitsSold,
		&dashboard.Summary.StockOnHand,
		&dashboard.Summary.PredictionsKept,
	)
	if err != nil {
		return nil, err
	}

	if dashboard.Summary.TotalSales > 0 {
		dashboard.Summary.AverageSale = dashboard.Summary.TotalRevenue.
			Div(decimal.NewFromInt(dashboard.Summary.TotalSales)).Round(2)
	}

	return dashboard, nil
}
