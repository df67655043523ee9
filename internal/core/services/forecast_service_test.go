// internal/core/services/forecast_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/core/services"
	"github.com/dmartins/varejo-be/test/helpers"
	"github.com/dmartins/varejo-be/test/mocks"
)

func forecastInput(overrides ...func(*domain.ForecastInput)) domain.ForecastInput {
	in := domain.ForecastInput{
		ProductID: uuid.New(),
		HistoricalSales: []decimal.Decimal{
			decimal.NewFromInt(10),
			decimal.NewFromInt(20),
			decimal.NewFromInt(30),
		},
		CurrentStock:      50,
		PromotionalFactor: decimal.NewFromFloat(1.2),
		SeasonalityFactor: decimal.NewFromFloat(0.8),
	}
	for _, o := range overrides {
		o(&in)
	}
	return in
}

func TestForecastService_Forecast(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.ForecastInput
		setupMocks    func(*mocks.MockTaskEnqueuer)
		validate      func(*testing.T, *domain.Prediction)
		expectedError bool
		errorContains string
	}{
		{
			name:  "computes_and_schedules_persistence",
			input: forecastInput(),
			setupMocks: func(m *mocks.MockTaskEnqueuer) {
				m.EXPECT().
					EnqueuePredictionPersist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p *domain.Prediction) error {
						assert.NotEqual(t, uuid.Nil, p.ID)
						assert.False(t, p.CreatedAt.IsZero())
						return nil
					})
			},
			validate: func(t *testing.T, p *domain.Prediction) {
				// avg(10,20,30) * 1.2 * 0.8 = 19.2
				assert.True(t, p.PredictedSales.Equal(decimal.NewFromFloat(19.2)),
					"got %s", p.PredictedSales)
				assert.Equal(t, 30, p.PredictedStock)
				assert.True(t, p.Confidence.Equal(decimal.NewFromFloat(0.85)))
			},
		},
		{
			name: "clamps_prediction_to_available_stock",
			input: forecastInput(func(in *domain.ForecastInput) {
				in.CurrentStock = 15
			}),
			setupMocks: func(m *mocks.MockTaskEnqueuer) {
				m.EXPECT().
					EnqueuePredictionPersist(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, p *domain.Prediction) {
				assert.True(t, p.PredictedSales.Equal(decimal.NewFromInt(15)))
				assert.Equal(t, 0, p.PredictedStock)
			},
		},
		{
			name:  "enqueue_failure_does_not_invalidate_result",
			input: forecastInput(),
			setupMocks: func(m *mocks.MockTaskEnqueuer) {
				m.EXPECT().
					EnqueuePredictionPersist(gomock.Any(), gomock.Any()).
					Return(errors.New("redis unavailable"))
			},
			validate: func(t *testing.T, p *domain.Prediction) {
				assert.True(t, p.PredictedSales.Equal(decimal.NewFromFloat(19.2)))
			},
		},
		{
			name: "rejects_missing_product_id",
			input: forecastInput(func(in *domain.ForecastInput) {
				in.ProductID = uuid.Nil
			}),
			setupMocks:    func(m *mocks.MockTaskEnqueuer) {},
			expectedError: true,
			errorContains: "product_id is required",
		},
		{
			name: "rejects_empty_history",
			input: forecastInput(func(in *domain.ForecastInput) {
				in.HistoricalSales = nil
			}),
			setupMocks:    func(m *mocks.MockTaskEnqueuer) {},
			expectedError: true,
			errorContains: "historical_sales cannot be empty",
		},
		{
			name: "rejects_negative_stock",
			input: forecastInput(func(in *domain.ForecastInput) {
				in.CurrentStock = -1
			}),
			setupMocks:    func(m *mocks.MockTaskEnqueuer) {},
			expectedError: true,
			errorContains: "current_stock cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPredictions := mocks.NewMockPredictionRepository(ctrl)
			mockEnqueuer := mocks.NewMockTaskEnqueuer(ctrl)
			service := services.NewForecastService(mockPredictions, mockEnqueuer, helpers.TestLogger())

			tt.setupMocks(mockEnqueuer)

			prediction, err := service.Forecast(context.Background(), tt.input)

			if tt.expectedError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, prediction)
			assert.Equal(t, tt.input.ProductID, prediction.ProductID)
			if tt.validate != nil {
				tt.validate(t, prediction)
			}
		})
	}
}

func TestForecastService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictions := mocks.NewMockPredictionRepository(ctrl)
	mockEnqueuer := mocks.NewMockTaskEnqueuer(ctrl)
	service := services.NewForecastService(mockPredictions, mockEnqueuer, helpers.TestLogger())

	t.Run("lists_newest_first_with_pagination", func(t *testing.T) {
		productID := uuid.New()
		stored := []domain.Prediction{
			{ID: uuid.New(), ProductID: productID, PredictedSales: decimal.NewFromInt(12)},
			{ID: uuid.New(), ProductID: productID, PredictedSales: decimal.NewFromInt(9)},
		}

		mockPredictions.EXPECT().
			ListByProduct(gomock.Any(), productID, domain.PageRequest{Page: 1, Limit: 10, Offset: 0}).
			Return(stored, int64(2), nil)

		result, err := service.History(context.Background(), productID, 1, 10)
		require.NoError(t, err)

		assert.Len(t, result.Items, 2)
		assert.Equal(t, int64(2), result.TotalCount)
		assert.Equal(t, 1, result.TotalPages)
	})

	t.Run("rejects_nil_product_id", func(t *testing.T) {
		_, err := service.History(context.Background(), uuid.Nil, 1, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("propagates_repository_error", func(t *testing.T) {
		productID := uuid.New()
		mockPredictions.EXPECT().
			ListByProduct(gomock.Any(), productID, gomock.Any()).
			Return(nil, int64(0), domain.ErrStoreUnavailable)

		_, err := service.History(context.Background(), productID, 1, 10)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}
