// internal/core/domain/prediction.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ForecastConfidence is the fixed confidence attached to every prediction.
// It is a policy constant, not a statistical measure.
var ForecastConfidence = decimal.NewFromFloat(0.85)

// ForecastInput holds everything the forecast rule needs for one product.
type ForecastInput struct {
	ProductID         uuid.UUID         `json:"product_id"`
	HistoricalSales   []decimal.Decimal `json:"historical_sales"`
	CurrentStock      int               `json:"current_stock"`
	PromotionalFactor decimal.Decimal   `json:"promotional_factor"`
	SeasonalityFactor decimal.Decimal   `json:"seasonality_factor"`
}

// Validate performs domain validation on the forecast input.
func (in *ForecastInput) Validate() error {
	if in.ProductID == uuid.Nil {
		return fmt.Errorf("%w: product_id is required", ErrInvalidInput)
	}
	if len(in.HistoricalSales) == 0 {
		return fmt.Errorf("%w: historical_sales cannot be empty", ErrInvalidInput)
	}
	for _, v := range in.HistoricalSales {
		if v.IsNegative() {
			return fmt.Errorf("%w: historical_sales values cannot be negative", ErrInvalidInput)
		}
	}
	if in.CurrentStock < 0 {
		return fmt.Errorf("%w: current_stock cannot be negative", ErrInvalidInput)
	}
	if in.PromotionalFactor.IsNegative() {
		return fmt.Errorf("%w: promotional_factor cannot be negative", ErrInvalidInput)
	}
	if in.SeasonalityFactor.IsNegative() {
		return fmt.Errorf("%w: seasonality_factor cannot be negative", ErrInvalidInput)
	}
	return nil
}

// Prediction is the output of one forecast run. Rows are append-only:
// a new run never supersedes a prior one.
type Prediction struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	PredictedSales decimal.Decimal `json:"predicted_sales"`
	PredictedStock int             `json:"predicted_stock"`
	Confidence     decimal.Decimal `json:"confidence"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PrepareForStorage assigns the identifier and creation timestamp.
func (p *Prediction) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// Forecast applies the deterministic forecast rule: average the historical
// sales, scale by the promotional and seasonality factors, and clamp to the
// physically available stock. The remaining stock is floored at zero and
// truncated to an integer.
func Forecast(in ForecastInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, v := range in.HistoricalSales {
		sum = sum.Add(v)
	}
	average := sum.Div(decimal.NewFromInt(int64(len(in.HistoricalSales))))

	stock := decimal.NewFromInt(int64(in.CurrentStock))
	predictedSales := average.Mul(in.PromotionalFactor).Mul(in.SeasonalityFactor)
	if predictedSales.GreaterThan(stock) {
		predictedSales = stock
	}

	remaining := stock.Sub(predictedSales)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &Prediction{
		ProductID:      in.ProductID,
		PredictedSales: predictedSales,
		PredictedStock: int(remaining.IntPart()),
		Confidence:     ForecastConfidence,
	}, nil
}
