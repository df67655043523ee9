// internal/handlers/sales_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmartins/varejo-be/internal/core/domain"
	"github.com/dmartins/varejo-be/internal/handlers"
	"github.com/dmartins/varejo-be/test/helpers"
	"github.com/dmartins/varejo-be/test/mocks"
)

func TestSaleHandler_Create(t *testing.T) {
	clientID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockSaleService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "records_sale_with_explicit_date",
			body: `{"client_id":"` + clientID.String() + `","product_id":"` + productID.String() + `","quantity":3,"total":104.70,"sale_date":"2026-08-15T10:00:00Z"}`,
			setupMocks: func(m *mocks.MockSaleService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, s *domain.Sale) error {
						assert.Equal(t, clientID, s.ClientID)
						assert.Equal(t, productID, s.ProductID)
						assert.Equal(t, 3, s.Quantity)
						assert.Equal(t, "2026-08-15T10:00:00Z", s.SaleDate.UTC().Format("2006-01-02T15:04:05Z"))
						s.ID = uuid.New()
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				env := decodeEnvelope(t, body)
				assert.Equal(t, "success", env.Status)

				var sale domain.Sale
				require.NoError(t, json.Unmarshal(env.Data, &sale))
				assert.NotEqual(t, uuid.Nil, sale.ID)
			},
		},
		{
			name: "omitted_date_is_left_for_the_service_to_default",
			body: `{"client_id":"` + clientID.String() + `","product_id":"` + productID.String() + `","quantity":1,"total":34.90}`,
			setupMocks: func(m *mocks.MockSaleService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx interface{}, s *domain.Sale) error {
						assert.True(t, s.SaleDate.IsZero())
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown_references_map_to_400",
			body: `{"client_id":"` + uuid.New().String() + `","product_id":"` + uuid.New().String() + `","quantity":1,"total":10}`,
			setupMocks: func(m *mocks.MockSaleService) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(domain.ErrConstraintViolation)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_json_body",
			body:           `{"quantity":"three"}`,
			setupMocks:     func(m *mocks.MockSaleService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockSaleService(ctrl)
			handler := handlers.NewSaleHandler(mockService, helpers.TestLogger())

			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/sales", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Result().StatusCode)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestSaleHandler_Update(t *testing.T) {
	saleID := uuid.New()
	newClient := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockSaleService(ctrl)
	handler := handlers.NewSaleHandler(mockService, helpers.TestLogger())

	updated := helpers.CreateTestSale(newClient, uuid.New())
	mockService.EXPECT().
		Update(gomock.Any(), saleID, domain.SalePatch{ClientID: &newClient}).
		Return(updated, nil)

	body := `{"client_id":"` + newClient.String() + `"}`
	req := httptest.NewRequest("PATCH", "/api/v1/sales/"+saleID.String(), bytes.NewBufferString(body))
	req.SetPathValue("id", saleID.String())
	w := httptest.NewRecorder()

	handler.Update(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)

	env := decodeEnvelope(t, w.Body.Bytes())
	var sale domain.Sale
	require.NoError(t, json.Unmarshal(env.Data, &sale))
	assert.Equal(t, newClient, sale.ClientID)
}
