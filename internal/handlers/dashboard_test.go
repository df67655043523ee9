// internal/handlers/dashboard_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmartins/varejo-be/internal/handlers"
	"github.com/dmartins/varejo-be/test/helpers"
	"github.com/dmartins/varejo-be/test/mocks"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("serves_cached_summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheRepository(ctrl)
		cache.EXPECT().
			GetOrSet(gomock.Any(), "dash:main", gomock.Any(), gomock.Any(), 5*time.Minute).
			DoAndReturn(func(_ context.Context, _ string, dest interface{},
				_ func() (interface{}, error), _ time.Duration) error {
				out := dest.(*handlers.DashboardData)
				out.Timestamp = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
				out.Summary = handlers.DashboardSummary{
					TotalClients: 3,
					TotalSales:   4,
					TotalRevenue: decimal.NewFromFloat(199.60),
					AverageSale:  decimal.NewFromFloat(49.90),
				}
				return nil
			})

		handler := handlers.NewDashboardHandler(nil, cache, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rec := httptest.NewRecorder()
		handler.GetDashboard(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "success", env.Status)

		var data handlers.DashboardData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(3), data.Summary.TotalClients)
		assert.Equal(t, int64(4), data.Summary.TotalSales)
		assert.True(t, decimal.NewFromFloat(49.90).Equal(data.Summary.AverageSale))
	})

	t.Run("cache_and_store_failure_is_not_leaked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := mocks.NewMockCacheRepository(ctrl)
		cache.EXPECT().
			GetOrSet(gomock.Any(), "dash:main", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: connection refused"))

		handler := handlers.NewDashboardHandler(nil, cache, helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rec := httptest.NewRecorder()
		handler.GetDashboard(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		env := decodeEnvelope(t, rec.Body.Bytes())
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, "failed to load dashboard", env.Message)
	})
}
