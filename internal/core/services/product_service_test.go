// internal/core/services/product_service_test.go
package services_test

import (
	"context"
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

func TestProductService_Create(t *testing.T) {
	tests := []struct {
		name          string
		product       *domain.Product
		setupMocks    func(*mocks.MockRepository[domain.Product, domain.ProductPatch])
		expectedError bool
		errorContains string
	}{
		{
			name:    "successful_create",
			product: helpers.CreateTestProduct(),
			setupMocks: func(m *mocks.MockRepository[domain.Product, domain.ProductPatch]) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "zero_price_is_allowed",
			product: helpers.CreateTestProduct(func(p *domain.Product) {
				p.Price = decimal.Zero
			}),
			setupMocks: func(m *mocks.MockRepository[domain.Product, domain.ProductPatch]) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "validation_fails_for_negative_price",
			product: helpers.CreateTestProduct(func(p *domain.Product) {
				p.Price = decimal.NewFromFloat(-1.50)
			}),
			setupMocks:    func(m *mocks.MockRepository[domain.Product, domain.ProductPatch]) {},
			expectedError: true,
			errorContains: "price cannot be negative",
		},
		{
			name: "validation_fails_for_negative_stock",
			product: helpers.CreateTestProduct(func(p *domain.Product) {
				p.StockQuantity = -10
			}),
			setupMocks:    func(m *mocks.MockRepository[domain.Product, domain.ProductPatch]) {},
			expectedError: true,
			errorContains: "stock_quantity cannot be negative",
		},
		{
			name: "validation_fails_for_missing_name",
			product: helpers.CreateTestProduct(func(p *domain.Product) {
				p.Name = ""
			}),
			setupMocks:    func(m *mocks.MockRepository[domain.Product, domain.ProductPatch]) {},
			expectedError: true,
			errorContains: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository[domain.Product, domain.ProductPatch](ctrl)
			service := services.NewProductService(mockRepo, helpers.TestLogger())

			tt.setupMocks(mockRepo)

			err := service.Create(context.Background(), tt.product)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, tt.product.ID)
			}
		})
	}
}

func TestProductService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository[domain.Product, domain.ProductPatch](ctrl)
	service := services.NewProductService(mockRepo, helpers.TestLogger())

	t.Run("patches_stock_only", func(t *testing.T) {
		newStock := 42
		updated := helpers.CreateTestProduct(func(p *domain.Product) {
			p.StockQuantity = newStock
		})

		mockRepo.EXPECT().
			Update(gomock.Any(), updated.ID, domain.ProductPatch{StockQuantity: &newStock}).
			Return(updated, nil)

		got, err := service.Update(context.Background(), updated.ID, domain.ProductPatch{StockQuantity: &newStock})
		require.NoError(t, err)
		assert.Equal(t, newStock, got.StockQuantity)
		// Untouched fields keep their stored values.
		assert.Equal(t, updated.Name, got.Name)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		bad := decimal.NewFromFloat(-9.99)
		_, err := service.Update(context.Background(), uuid.New(), domain.ProductPatch{Price: &bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
