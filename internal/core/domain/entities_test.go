package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

func TestClient_Validate(t *testing.T) {
	tests := []struct {
		name      string
		client    domain.Client
		wantError bool
	}{
		{
			name:      "valid_client",
			client:    domain.Client{Name: "Maria Souza", Email: "maria@example.com", Phone: "+55 11 98888-0000"},
			wantError: false,
		},
		{
			name:      "missing_name",
			client:    domain.Client{Email: "maria@example.com"},
			wantError: true,
		},
		{
			name:      "missing_email",
			client:    domain.Client{Name: "Maria Souza"},
			wantError: true,
		},
		{
			name:      "malformed_email",
			client:    domain.Client{Name: "Maria Souza", Email: "not-an-email"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.client.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name      string
		product   domain.Product
		wantError bool
	}{
		{
			name:      "valid_product",
			product:   domain.Product{Name: "Espresso Beans 1kg", Price: decimal.NewFromFloat(42.90), StockQuantity: 12},
			wantError: false,
		},
		{
			name:      "zero_price_is_allowed",
			product:   domain.Product{Name: "Sample", Price: decimal.Zero},
			wantError: false,
		},
		{
			name:      "negative_price",
			product:   domain.Product{Name: "Espresso Beans 1kg", Price: decimal.NewFromInt(-1)},
			wantError: true,
		},
		{
			name:      "negative_stock",
			product:   domain.Product{Name: "Espresso Beans 1kg", Price: decimal.NewFromInt(10), StockQuantity: -1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSale_Validate(t *testing.T) {
	clientID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name      string
		sale      domain.Sale
		wantError bool
	}{
		{
			name:      "valid_sale",
			sale:      domain.Sale{ClientID: clientID, ProductID: productID, Quantity: 2, Total: decimal.NewFromFloat(85.80)},
			wantError: false,
		},
		{
			name:      "missing_client",
			sale:      domain.Sale{ProductID: productID, Quantity: 1, Total: decimal.NewFromInt(10)},
			wantError: true,
		},
		{
			name:      "zero_quantity",
			sale:      domain.Sale{ClientID: clientID, ProductID: productID, Quantity: 0, Total: decimal.NewFromInt(10)},
			wantError: true,
		},
		{
			name:      "negative_total",
			sale:      domain.Sale{ClientID: clientID, ProductID: productID, Quantity: 1, Total: decimal.NewFromInt(-10)},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sale.Validate()
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSale_PrepareForStorage_DefaultsSaleDate(t *testing.T) {
	sale := &domain.Sale{
		ClientID:  uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
		Total:     decimal.NewFromInt(10),
	}

	sale.PrepareForStorage()

	require.NotEqual(t, uuid.Nil, sale.ID)
	assert.False(t, sale.SaleDate.IsZero())
	assert.False(t, sale.CreatedAt.IsZero())
}

func TestPatch_IsEmpty(t *testing.T) {
	name := "new name"

	assert.True(t, domain.ClientPatch{}.IsEmpty())
	assert.False(t, domain.ClientPatch{Name: &name}.IsEmpty())

	assert.True(t, domain.ProductPatch{}.IsEmpty())
	assert.True(t, domain.SalePatch{}.IsEmpty())

	qty := 3
	assert.False(t, domain.SalePatch{Quantity: &qty}.IsEmpty())
}

func TestPatch_Validate(t *testing.T) {
	empty := ""
	bad := "nope"
	negative := decimal.NewFromInt(-5)
	zeroQty := 0

	assert.ErrorIs(t, domain.ClientPatch{Name: &empty}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.ClientPatch{Email: &bad}.Validate(), domain.ErrInvalidInput)
	assert.NoError(t, domain.ClientPatch{}.Validate())

	assert.ErrorIs(t, domain.ProductPatch{Price: &negative}.Validate(), domain.ErrInvalidInput)
	assert.ErrorIs(t, domain.SalePatch{Quantity: &zeroQty}.Validate(), domain.ErrInvalidInput)
}
