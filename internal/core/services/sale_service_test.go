// internal/core/services/sale_service_test.go
package services_test

import (
	"context"
	"testing"
	"time"

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

func TestSaleService_Create(t *testing.T) {
	clientID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name          string
		sale          *domain.Sale
		setupMocks    func(*mocks.MockRepository[domain.Sale, domain.SalePatch])
		expectedError bool
		errorContains string
	}{
		{
			name: "successful_create",
			sale: helpers.CreateTestSale(clientID, productID),
			setupMocks: func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "defaults_sale_date_when_unset",
			sale: helpers.CreateTestSale(clientID, productID, func(s *domain.Sale) {
				s.SaleDate = time.Time{}
			}),
			setupMocks: func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, s *domain.Sale) error {
						assert.False(t, s.SaleDate.IsZero())
						return nil
					})
			},
		},
		{
			name:          "validation_fails_for_missing_client",
			sale:          helpers.CreateTestSale(uuid.Nil, productID),
			setupMocks:    func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {},
			expectedError: true,
			errorContains: "client_id is required",
		},
		{
			name: "validation_fails_for_zero_quantity",
			sale: helpers.CreateTestSale(clientID, productID, func(s *domain.Sale) {
				s.Quantity = 0
			}),
			setupMocks:    func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {},
			expectedError: true,
			errorContains: "quantity must be positive",
		},
		{
			name: "validation_fails_for_negative_total",
			sale: helpers.CreateTestSale(clientID, productID, func(s *domain.Sale) {
				s.Total = decimal.NewFromFloat(-50)
			}),
			setupMocks:    func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {},
			expectedError: true,
			errorContains: "total cannot be negative",
		},
		{
			name: "referential_failure_surfaces_as_constraint_violation",
			sale: helpers.CreateTestSale(clientID, productID),
			setupMocks: func(m *mocks.MockRepository[domain.Sale, domain.SalePatch]) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(domain.ErrConstraintViolation)
			},
			expectedError: true,
			errorContains: "constraint violation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRepository[domain.Sale, domain.SalePatch](ctrl)
			service := services.NewSaleService(mockRepo, helpers.TestLogger())

			tt.setupMocks(mockRepo)

			err := service.Create(context.Background(), tt.sale)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, tt.sale.ID)
			}
		})
	}
}

func TestSaleService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository[domain.Sale, domain.SalePatch](ctrl)
	service := services.NewSaleService(mockRepo, helpers.TestLogger())

	t.Run("repoints_sale_to_another_product", func(t *testing.T) {
		saleID := uuid.New()
		newProduct := uuid.New()
		updated := helpers.CreateTestSale(uuid.New(), newProduct)

		mockRepo.EXPECT().
			Update(gomock.Any(), saleID, domain.SalePatch{ProductID: &newProduct}).
			Return(updated, nil)

		got, err := service.Update(context.Background(), saleID, domain.SalePatch{ProductID: &newProduct})
		require.NoError(t, err)
		assert.Equal(t, newProduct, got.ProductID)
	})

	t.Run("rejects_zero_quantity_patch", func(t *testing.T) {
		zero := 0
		_, err := service.Update(context.Background(), uuid.New(), domain.SalePatch{Quantity: &zero})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
